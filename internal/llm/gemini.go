// Package llm wraps the Gemini API for image editing and note generation.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"banana-studio/internal/imageutil"
)

// Default models: the image model renders edits, the text model writes
// note copy.
const (
	DefaultImageModel = "gemini-3-pro-image-preview"
	DefaultTextModel  = "gemini-2.0-flash"
)

// GeneratedNote is the structured payload the text model returns for a
// note request.
type GeneratedNote struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// GeminiClient calls the Gemini API.
type GeminiClient struct {
	client     *genai.Client
	imageModel string
	textModel  string
}

// GeminiOption configures a GeminiClient.
type GeminiOption func(*GeminiClient)

// WithImageModel overrides the image generation model.
func WithImageModel(model string) GeminiOption {
	return func(g *GeminiClient) {
		g.imageModel = model
	}
}

// WithTextModel overrides the text generation model.
func WithTextModel(model string) GeminiOption {
	return func(g *GeminiClient) {
		g.textModel = model
	}
}

// NewGemini creates a Gemini client authenticated with an API key.
func NewGemini(ctx context.Context, apiKey string, opts ...GeminiOption) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	g := &GeminiClient{
		client:     client,
		imageModel: DefaultImageModel,
		textModel:  DefaultTextModel,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// EditImage sends the prompt plus zero or more source images (data URLs) to
// the image model and returns the generated image as a data URL. With no
// images this is a text-to-image request.
func (g *GeminiClient) EditImage(ctx context.Context, prompt string, images []string) (string, error) {
	parts := make([]*genai.Part, 0, len(images)+1)
	for _, dataURL := range images {
		raw, mimeType, err := imageutil.DecodeDataURL(dataURL)
		if err != nil {
			return "", fmt.Errorf("decode source image: %w", err)
		}
		parts = append(parts, genai.NewPartFromBytes(raw, mimeType))
	}
	parts = append(parts, genai.NewPartFromText(prompt))

	resp, err := g.client.Models.GenerateContent(ctx, g.imageModel,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"IMAGE"},
		},
	)
	if err != nil {
		return "", fmt.Errorf("generate image: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return imageutil.EncodeDataURL(part.InlineData.Data, part.InlineData.MIMEType), nil
			}
		}
	}
	return "", fmt.Errorf("model returned no image")
}

// GenerateNote asks the text model for a social note about topic in the
// given style, optionally grounded on an image (data URL). The model is
// instructed to answer with a JSON object.
func (g *GeminiClient) GenerateNote(ctx context.Context, topic, noteType, imageDataURL string) (*GeneratedNote, error) {
	prompt := fmt.Sprintf(`You are a social media copywriter. Write a %s-style note about: %s.
Respond with only a JSON object of this exact shape:
{"title": "...", "content": "...", "tags": ["...", "..."]}
The title should be catchy and include an emoji. The content should be 100-300 words with line breaks and emoji. Provide 3-6 topic tags without the # prefix.`, noteType, topic)

	parts := []*genai.Part{}
	model := g.textModel
	if imageDataURL != "" {
		raw, mimeType, err := imageutil.DecodeDataURL(imageDataURL)
		if err != nil {
			return nil, fmt.Errorf("decode note image: %w", err)
		}
		parts = append(parts, genai.NewPartFromBytes(raw, mimeType))
	}
	parts = append(parts, genai.NewPartFromText(prompt))

	resp, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("generate note: %w", err)
	}

	note, err := parseNoteJSON(resp.Text())
	if err != nil {
		return nil, err
	}
	return note, nil
}

// noteStyleHints maps the supported content styles to wording for the
// rewrite prompt. Unknown styles pass through verbatim.
var noteStyleHints = map[string]string{
	"lively":       "a lively, playful tone with plenty of interjections and emoji, like chatting with a close friend",
	"professional": "a professional, informative tone with clear structure and concrete facts",
	"literary":     "a literary, poetic tone with elegant wording and atmosphere",
	"humorous":     "a humorous tone full of jokes and punchlines",
}

// RewriteNote asks the text model to revise a note according to a free-form
// instruction. The reply carries new title, content and tags.
func (g *GeminiClient) RewriteNote(ctx context.Context, note *GeneratedNote, instruction string) (*GeneratedNote, error) {
	prompt := fmt.Sprintf(`You are a social media copy editor. Revise the note below according to the instruction.

Current note:
Title: %s
Content: %s
Tags: %s

Instruction: %s

Respond with only a JSON object of this exact shape:
{"title": "...", "content": "...", "tags": ["...", "..."]}`,
		note.Title, note.Content, strings.Join(note.Tags, ", "), instruction)

	return g.generateNoteJSON(ctx, prompt)
}

// ChangeNoteStyle rewrites a note's title and content in another delivery
// style while preserving the core content. Tags are left to the caller.
func (g *GeminiClient) ChangeNoteStyle(ctx context.Context, note *GeneratedNote, style string) (*GeneratedNote, error) {
	hint, ok := noteStyleHints[style]
	if !ok {
		hint = style
	}
	prompt := fmt.Sprintf(`You are a social media rewriting expert. Rewrite the note below in %s.

Current note:
Title: %s
Content: %s

Keep the core content unchanged; only change the delivery. Adjust the title to match the new style.

Respond with only a JSON object of this exact shape:
{"title": "...", "content": "..."}`,
		hint, note.Title, note.Content)

	return g.generateNoteJSON(ctx, prompt)
}

// GenerateTitles asks the text model for count alternative titles for a
// topic, each taking a different angle.
func (g *GeminiClient) GenerateTitles(ctx context.Context, topic, noteType string, count int) ([]string, error) {
	prompt := fmt.Sprintf(`You are a social media headline writer. Write %d alternative titles for a %s-style note about: %s.
Each title should be short, catchy, include an emoji, and take a different angle (curiosity, numbers, contrast, question).
Respond with only a JSON array of strings: ["...", "..."]`, count, noteType, topic)

	resp, err := g.client.Models.GenerateContent(ctx, g.textModel,
		[]*genai.Content{genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser)},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("generate titles: %w", err)
	}
	return parseTitlesJSON(resp.Text())
}

// EnhancePrompt rewrites a user prompt into a richer image-generation
// prompt, in the same language the user wrote it in.
func (g *GeminiClient) EnhancePrompt(ctx context.Context, prompt string) (string, error) {
	instruction := fmt.Sprintf(`You are a professional AI art prompt engineer. Rewrite the following user prompt to be more descriptive, artistic, and suitable for high-quality image generation.
Keep the original subject and meaning, and add details about lighting, texture, composition, and style.
Answer in the SAME LANGUAGE as the user prompt, and output only the enhanced prompt text with no preamble or quotes.

User prompt: %q`, prompt)

	resp, err := g.client.Models.GenerateContent(ctx, g.textModel,
		[]*genai.Content{genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(instruction)}, genai.RoleUser)},
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("enhance prompt: %w", err)
	}
	enhanced := strings.TrimSpace(resp.Text())
	if enhanced == "" {
		return "", fmt.Errorf("model returned no text")
	}
	return enhanced, nil
}

// generateNoteJSON sends a text-only prompt to the text model and parses
// the reply as a note object.
func (g *GeminiClient) generateNoteJSON(ctx context.Context, prompt string) (*GeneratedNote, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.textModel,
		[]*genai.Content{genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser)},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("generate note: %w", err)
	}
	return parseNoteJSON(resp.Text())
}

// parseNoteJSON extracts the JSON object from a model reply, tolerating
// markdown code fences around it.
func parseNoteJSON(text string) (*GeneratedNote, error) {
	text = strings.TrimSpace(text)
	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			text = text[start : end+1]
		}
	}

	var note GeneratedNote
	if err := json.Unmarshal([]byte(text), &note); err != nil {
		return nil, fmt.Errorf("parse note JSON: %w", err)
	}
	if note.Title == "" && note.Content == "" {
		return nil, fmt.Errorf("model returned an empty note")
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}
	return &note, nil
}

// parseTitlesJSON extracts the JSON string array from a model reply,
// tolerating markdown code fences around it.
func parseTitlesJSON(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if start := strings.Index(text, "["); start >= 0 {
		if end := strings.LastIndex(text, "]"); end > start {
			text = text[start : end+1]
		}
	}

	var titles []string
	if err := json.Unmarshal([]byte(text), &titles); err != nil {
		return nil, fmt.Errorf("parse titles JSON: %w", err)
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("model returned no titles")
	}
	return titles, nil
}

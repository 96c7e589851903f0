package llm

import (
	"testing"
)

func TestParseNoteJSON(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
		check   func(*GeneratedNote) bool
	}{
		{
			name: "plain JSON object",
			text: `{"title": "Golden Hour ✨", "content": "The light today...", "tags": ["sunset", "photo"]}`,
			check: func(n *GeneratedNote) bool {
				return n.Title == "Golden Hour ✨" && len(n.Tags) == 2
			},
		},
		{
			name: "fenced JSON",
			text: "```json\n{\"title\": \"T\", \"content\": \"C\", \"tags\": [\"a\"]}\n```",
			check: func(n *GeneratedNote) bool {
				return n.Title == "T" && n.Content == "C"
			},
		},
		{
			name: "chatter around the object",
			text: "Sure! Here is your note:\n{\"title\": \"T\", \"content\": \"C\", \"tags\": []}\nHope that helps.",
			check: func(n *GeneratedNote) bool {
				return n.Title == "T"
			},
		},
		{
			name: "missing tags become empty slice",
			text: `{"title": "T", "content": "C"}`,
			check: func(n *GeneratedNote) bool {
				return n.Tags != nil && len(n.Tags) == 0
			},
		},
		{
			name:    "not JSON at all",
			text:    "I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "empty object",
			text:    `{}`,
			wantErr: true,
		},
		{
			name:    "empty reply",
			text:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note, err := parseNoteJSON(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseNoteJSON() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseNoteJSON() error = %v", err)
			}
			if tt.check != nil && !tt.check(note) {
				t.Errorf("parseNoteJSON() = %+v, validation failed", note)
			}
		})
	}
}

func TestParseTitlesJSON(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int
		wantErr bool
	}{
		{
			name: "plain JSON array",
			text: `["First 🍜", "Second ✨", "Third ❓"]`,
			want: 3,
		},
		{
			name: "fenced JSON array",
			text: "```json\n[\"a\", \"b\"]\n```",
			want: 2,
		},
		{
			name: "chatter around the array",
			text: "Here you go:\n[\"a\"]\nEnjoy!",
			want: 1,
		},
		{
			name:    "empty array",
			text:    `[]`,
			wantErr: true,
		},
		{
			name:    "not JSON at all",
			text:    "I cannot help with that.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			titles, err := parseTitlesJSON(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTitlesJSON() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTitlesJSON() error = %v", err)
			}
			if len(titles) != tt.want {
				t.Errorf("parseTitlesJSON() count = %d, want %d", len(titles), tt.want)
			}
		})
	}
}

func TestGeminiOptions(t *testing.T) {
	g := &GeminiClient{imageModel: DefaultImageModel, textModel: DefaultTextModel}

	WithImageModel("custom-image")(g)
	WithTextModel("custom-text")(g)

	if g.imageModel != "custom-image" {
		t.Errorf("imageModel = %q, want custom-image", g.imageModel)
	}
	if g.textModel != "custom-text" {
		t.Errorf("textModel = %q, want custom-text", g.textModel)
	}
}

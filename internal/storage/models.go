package storage

// GenerationRecord is one AI image-edit result. Records are immutable after
// creation; Timestamp is the creation time in epoch millis and the sort key
// for recency ordering. Images are stored as data URLs.
type GenerationRecord struct {
	ID             string   `json:"id"`
	OriginalImage  string   `json:"originalImage"`
	OriginalImages []string `json:"originalImages,omitempty"` // multi-source variant
	EditedImage    string   `json:"editedImage"`
	Prompt         string   `json:"prompt"`
	Timestamp      int64    `json:"timestamp"`
	IsMultiImage   bool     `json:"isMultiImage,omitempty"`
	IsTextToImage  bool     `json:"isTextToImage,omitempty"`
}

// NoteType tags the content style of a generated note.
type NoteType string

const (
	NoteRecommend NoteType = "recommend"
	NoteReview    NoteType = "review"
	NoteTutorial  NoteType = "tutorial"
	NoteDaily     NoteType = "daily"
	NoteFood      NoteType = "food"
	NoteTravel    NoteType = "travel"
	NoteFashion   NoteType = "fashion"
	NoteCustom    NoteType = "custom"
)

// NoteRecord is one generated social-media note. Edits (rewrite, style
// change, title swap) replace the whole record under the same ID.
type NoteRecord struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	Timestamp  int64    `json:"timestamp"`
	NoteType   NoteType `json:"noteType"`
	InputTopic string   `json:"inputTopic"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	ImageURLs  []string `json:"imageUrls,omitempty"`
}

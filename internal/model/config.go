package model

// DefaultPreviewLength is the number of runes of content shown in the
// note view before truncation.
const DefaultPreviewLength = 240

// Config holds the application configuration
type Config struct {
	// PreviewLength is the content truncation length for the note view
	PreviewLength int `json:"preview_length"`

	// TimeFormat is the timestamp layout used by plain-text output
	TimeFormat string `json:"time_format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		PreviewLength: DefaultPreviewLength,
		TimeFormat:    "2006-01-02 15:04",
	}
}

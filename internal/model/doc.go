// Package model defines the data structures used throughout notr.
//
// This package contains the core domain models that represent the
// application's data. These models are shared by the storage layer, the
// service layer, and the terminal UI.
//
// # Note
//
// The [Note] struct is the sole persisted entity:
//
//	type Note struct {
//	    ID        string    // Unique identifier (UUID), immutable
//	    Title     string    // Non-empty after trimming
//	    Content   string    // Free text, may be empty
//	    CreatedAt time.Time // Set once at creation
//	    UpdatedAt time.Time // Refreshed on every successful edit
//	}
//
// # Config
//
// The [Config] struct holds application configuration:
//
//	type Config struct {
//	    PreviewLength int    // Content truncation length in the note view
//	    TimeFormat    string // Timestamp layout for plain-text output
//	}
package model

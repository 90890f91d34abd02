package core

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/inovacc/notr/internal/model"
	"github.com/inovacc/notr/internal/store"
)

// Service owns the note collection for the lifetime of the process.
type Service struct {
	store  store.Store
	notes  []model.Note
	clock  func() time.Time
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService hydrates the collection from the store. A malformed persisted
// payload is logged and treated as an empty collection; the user never sees
// a startup error.
func NewService(st store.Store, opts ...Option) *Service {
	s := &Service{
		store: st,
		clock: time.Now,
		logger: slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelWarn})),
	}

	for _, opt := range opts {
		opt(s)
	}

	notes, err := st.LoadNotes()
	if err != nil {
		if errors.Is(err, store.ErrMalformedPayload) {
			s.logger.Warn("discarding malformed note payload", "error", err)
		} else {
			s.logger.Warn("failed to load notes", "error", err)
		}

		notes = []model.Note{}
	}

	s.notes = notes

	return s
}

// Notes returns a copy of the full collection, newest first.
func (s *Service) Notes() []model.Note {
	out := make([]model.Note, len(s.notes))
	copy(out, s.notes)

	return out
}

// Get returns the note with the given id.
func (s *Service) Get(id string) (model.Note, bool) {
	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}

	return model.Note{}, false
}

// Create validates and prepends a new note to the collection.
func (s *Service) Create(title, content string) (model.Note, error) {
	if strings.TrimSpace(title) == "" {
		return model.Note{}, ErrEmptyTitle
	}

	note := model.NewNote(title, content, s.clock())

	s.notes = append([]model.Note{note}, s.notes...)
	s.persist()

	return note, nil
}

// Update replaces the title and content of an existing note and refreshes
// its UpdatedAt. ID, CreatedAt, and collection order are unchanged.
func (s *Service) Update(id, title, content string) (model.Note, error) {
	if strings.TrimSpace(title) == "" {
		return model.Note{}, ErrEmptyTitle
	}

	for i := range s.notes {
		if s.notes[i].ID != id {
			continue
		}

		s.notes[i].Title = strings.TrimSpace(title)
		s.notes[i].Content = strings.TrimSpace(content)
		s.notes[i].UpdatedAt = s.clock()
		s.persist()

		return s.notes[i], nil
	}

	return model.Note{}, ErrNoteNotFound
}

// Delete removes the note with the given id. Interactive confirmation is
// the caller's responsibility; Delete is the post-confirmation mutation.
func (s *Service) Delete(id string) error {
	for i := range s.notes {
		if s.notes[i].ID != id {
			continue
		}

		s.notes = append(s.notes[:i], s.notes[i+1:]...)
		s.persist()

		return nil
	}

	return ErrNoteNotFound
}

// Filter returns the notes matching the query, preserving collection
// order. A blank query returns the full collection.
func (s *Service) Filter(query string) []model.Note {
	if strings.TrimSpace(query) == "" {
		return s.Notes()
	}

	out := []model.Note{}

	for _, n := range s.notes {
		if n.Matches(query) {
			out = append(out, n)
		}
	}

	return out
}

// Config returns the stored configuration, falling back to defaults when
// the store cannot produce one.
func (s *Service) Config() model.Config {
	cfg, err := s.store.GetConfig()
	if err != nil || cfg == nil {
		s.logger.Warn("failed to load config", "error", err)

		return model.DefaultConfig()
	}

	if cfg.PreviewLength <= 0 {
		cfg.PreviewLength = model.DefaultPreviewLength
	}

	return *cfg
}

// SetConfig persists the configuration. Unlike note writes this is an
// explicit settings change, so the failure is reported to the caller.
func (s *Service) SetConfig(cfg model.Config) error {
	return s.store.SaveConfig(&cfg)
}

// persist mirrors the collection to the store. Write failures (quota,
// permissions) are logged and swallowed; in-memory state stays
// authoritative for the rest of the session.
func (s *Service) persist() {
	if err := s.store.SaveNotes(s.notes); err != nil {
		s.logger.Warn("failed to persist notes", "error", err)
	}
}

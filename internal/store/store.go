package store

import (
	"errors"
	"sync"

	"github.com/inovacc/notr/internal/model"
)

// ErrMalformedPayload reports a persisted notes payload that could not be
// decoded as a note collection. Callers hydrating at startup typically log
// it and continue with an empty collection.
var ErrMalformedPayload = errors.New("malformed notes payload")

// Store defines the persistence operations used by the app.
type Store interface {
	Ping() error

	// LoadNotes returns the persisted collection in saved order. An
	// absent payload yields an empty slice and no error; an undecodable
	// payload yields an error wrapping ErrMalformedPayload.
	LoadNotes() ([]model.Note, error)

	// SaveNotes replaces the persisted collection wholesale, preserving
	// the order of the given slice.
	SaveNotes(notes []model.Note) error

	GetConfig() (*model.Config, error)
	SaveConfig(cfg *model.Config) error

	Close() error
}

var (
	once sync.Once
	db   Store
)

// GetDB returns the initialized store.
func GetDB() Store {
	once.Do(lazyInit)

	return db
}

func lazyInit() {
	instance, err := initDB()
	if err != nil {
		panic(err)
	}

	_ = instance.Ping()
	db = instance
}

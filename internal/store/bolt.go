//go:build !sqlite

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/inovacc/notr/internal/model"
	"github.com/inovacc/notr/internal/params"
	"go.etcd.io/bbolt"
)

const (
	boltBucketNotes  = "notes"  // key: "notes" -> JSON array of Note
	boltBucketConfig = "config" // key: "config" -> Config JSON

	boltKeyNotes  = "notes"
	boltKeyConfig = "config"
)

type Bolt struct {
	storage *bbolt.DB
}

// NewBolt creates a new Bolt store at the specified path.
// This is primarily exposed for testing purposes.
func NewBolt(path string) (*Bolt, error) {
	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketNotes)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(boltBucketConfig)); err != nil {
			return err
		}

		return nil
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}

func initDB() (Store, error) {
	path := filepath.Join(params.AppdataDir, "notr.bolt")

	return NewBolt(path)
}

func (b *Bolt) Ping() error {
	return b.storage.View(func(tx *bbolt.Tx) error {
		return nil
	})
}

func (b *Bolt) LoadNotes() ([]model.Note, error) {
	var raw []byte

	if err := b.storage.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketNotes))

		if v := bucket.Get([]byte(boltKeyNotes)); v != nil {
			raw = append(raw, v...)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	if raw == nil {
		return []model.Note{}, nil
	}

	var notes []model.Note
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	if notes == nil {
		notes = []model.Note{}
	}

	return notes, nil
}

func (b *Bolt) SaveNotes(notes []model.Note) error {
	if notes == nil {
		notes = []model.Note{}
	}

	data, err := json.Marshal(notes)
	if err != nil {
		return err
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketNotes))

		return bucket.Put([]byte(boltKeyNotes), data)
	})
}

func (b *Bolt) GetConfig() (*model.Config, error) {
	var cfg *model.Config

	err := b.storage.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketConfig))
		v := bucket.Get([]byte(boltKeyConfig))

		if v == nil {
			// Return default config if not found
			defaultCfg := model.DefaultConfig()
			cfg = &defaultCfg

			return nil
		}

		var c model.Config
		if err := json.Unmarshal(v, &c); err != nil {
			return err
		}

		cfg = &c

		return nil
	})

	return cfg, err
}

func (b *Bolt) SaveConfig(cfg *model.Config) error {
	if cfg == nil {
		return errors.New("config is required")
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	return b.storage.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(boltBucketConfig))

		return bucket.Put([]byte(boltKeyConfig), data)
	})
}

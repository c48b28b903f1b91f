package history

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
)

type Store struct {
	db *gorm.DB
}

type Entry struct {
	ID string

	Operation string
	URL       string

	Values []string

	Message  string
	Subtitle string

	CreatedAt time.Time
}

type EntryModel struct {
	ID string `gorm:"primaryKey"`

	Operation string
	URL       string

	Values datatypes.JSONSlice[string]

	Message  string
	Subtitle string

	CreatedAt time.Time `gorm:"index"`
}

func (EntryModel) TableName() string {
	return "history"
}

func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(gormlite.Open(path), &gorm.Config{
		Logger: logger.Discard,
	})

	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&EntryModel{}); err != nil {
		return nil, err
	}

	return &Store{
		db: db,
	}, nil
}

func (s *Store) Close() error {
	db, err := s.db.DB()

	if err != nil {
		return err
	}

	return db.Close()
}

func (s *Store) Add(ctx context.Context, e Entry) (*Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	m := &EntryModel{
		ID: e.ID,

		Operation: e.Operation,
		URL:       e.URL,

		Values: datatypes.NewJSONSlice(e.Values),

		Message:  e.Message,
		Subtitle: e.Subtitle,

		CreatedAt: e.CreatedAt,
	}

	if result := s.db.WithContext(ctx).Create(m); result.Error != nil {
		return nil, result.Error
	}

	return &e, nil
}

// List returns the newest entries first.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	var models []EntryModel

	if result := s.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&models); result.Error != nil {
		return nil, result.Error
	}

	var entries []Entry

	for _, m := range models {
		entries = append(entries, Entry{
			ID: m.ID,

			Operation: m.Operation,
			URL:       m.URL,

			Values: m.Values,

			Message:  m.Message,
			Subtitle: m.Subtitle,

			CreatedAt: m.CreatedAt,
		})
	}

	return entries, nil
}

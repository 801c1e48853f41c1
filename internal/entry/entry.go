// Package entry owns the lifecycle of shortened URLs and notes: the tagged
// entry model, its storage layout, and the repository that creates, fetches
// and updates entries.
package entry

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind distinguishes the two entry variants. It doubles as the storage key
// namespace prefix, so one slug space maps to two distinct key spaces.
type Kind string

const (
	KindURL  Kind = "url"
	KindNote Kind = "note"
)

// Key returns the storage key for a slug in this kind's namespace.
func (k Kind) Key(slug string) string {
	return string(k) + ":" + slug
}

// Entry is the persisted record for either a shortened URL or a note.
// Kind selects which of the variant fields are meaningful.
type Entry struct {
	Kind         Kind
	Slug         string
	CreatedAt    time.Time
	LastAccessed *time.Time
	AccessCount  int // serialized as clickCount for urls, viewCount for notes

	// URL variant
	OriginalURL string

	// Note variant
	Title   string
	Content string
}

// Key returns the entry's storage key.
func (e *Entry) Key() string {
	return e.Kind.Key(e.Slug)
}

type urlRecord struct {
	OriginalURL  string     `json:"originalUrl"`
	Slug         string     `json:"slug"`
	CreatedAt    time.Time  `json:"createdAt"`
	ClickCount   int        `json:"clickCount"`
	LastAccessed *time.Time `json:"lastAccessed"`
}

type noteRecord struct {
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Slug         string     `json:"slug"`
	CreatedAt    time.Time  `json:"createdAt"`
	ViewCount    int        `json:"viewCount"`
	LastAccessed *time.Time `json:"lastAccessed"`
}

// Marshal serializes the entry into its kind's storage layout.
func Marshal(e *Entry) ([]byte, error) {
	switch e.Kind {
	case KindURL:
		return json.Marshal(urlRecord{
			OriginalURL:  e.OriginalURL,
			Slug:         e.Slug,
			CreatedAt:    e.CreatedAt,
			ClickCount:   e.AccessCount,
			LastAccessed: e.LastAccessed,
		})
	case KindNote:
		return json.Marshal(noteRecord{
			Type:         "note",
			Title:        e.Title,
			Content:      e.Content,
			Slug:         e.Slug,
			CreatedAt:    e.CreatedAt,
			ViewCount:    e.AccessCount,
			LastAccessed: e.LastAccessed,
		})
	}

	return nil, fmt.Errorf("unknown entry kind %q", e.Kind)
}

// Unmarshal decodes a stored value into an entry of the given kind.
func Unmarshal(kind Kind, data []byte) (*Entry, error) {
	switch kind {
	case KindURL:
		var rec urlRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, err
		}

		return &Entry{
			Kind:         KindURL,
			Slug:         rec.Slug,
			CreatedAt:    rec.CreatedAt,
			LastAccessed: rec.LastAccessed,
			AccessCount:  rec.ClickCount,
			OriginalURL:  rec.OriginalURL,
		}, nil
	case KindNote:
		var rec noteRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, err
		}

		return &Entry{
			Kind:         KindNote,
			Slug:         rec.Slug,
			CreatedAt:    rec.CreatedAt,
			LastAccessed: rec.LastAccessed,
			AccessCount:  rec.ViewCount,
			Title:        rec.Title,
			Content:      rec.Content,
		}, nil
	}

	return nil, fmt.Errorf("unknown entry kind %q", kind)
}

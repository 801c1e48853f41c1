package handlers

import "time"

// ShortenRequest is the body for creating a short URL.
type ShortenRequest struct {
	Body struct {
		URL        string `doc:"The URL to shorten; https:// is assumed when no scheme is given" example:"https://example.com/very/long/path" json:"url"`
		CustomSlug string `doc:"Optional custom slug, [A-Za-z0-9_-]+ only"                       example:"my-link"                             json:"customSlug,omitempty" required:"false"`
	}
}

// ShortenResponse is returned for a successfully created short URL.
type ShortenResponse struct {
	Body struct {
		Success     bool      `json:"success"`
		Slug        string    `example:"abc123"                               json:"slug"`
		OriginalURL string    `example:"https://example.com/very/long/path"   json:"originalUrl"`
		CreatedAt   time.Time `json:"createdAt"`
		ShortURL    string    `example:"http://localhost:8888/abc123"         json:"shortUrl"`
	}
}

// NoteRequest is the body for creating a note.
type NoteRequest struct {
	Body struct {
		Title   string `doc:"Optional note title"    example:"groceries"  json:"title,omitempty" required:"false"`
		Content string `doc:"Note content, required" example:"milk, eggs" json:"content"`
	}
}

// NoteResponse is returned for a successfully created note.
type NoteResponse struct {
	Body struct {
		Success   bool      `json:"success"`
		Slug      string    `example:"ab12" json:"slug"`
		Title     string    `json:"title"`
		CreatedAt time.Time `json:"createdAt"`
		NoteURL   string    `example:"http://localhost:8888/ab12" json:"noteUrl"`
	}
}

// StatsRequest queries usage statistics for a short URL.
type StatsRequest struct {
	// Optional at the schema level so a missing value maps to 400, not a
	// validation 422.
	Slug string `doc:"Slug to look up" query:"slug" required:"false"`
}

// StatsResponse carries the access statistics of one short URL.
type StatsResponse struct {
	Body struct {
		Success      bool       `json:"success"`
		Slug         string     `json:"slug"`
		OriginalURL  string     `json:"originalUrl"`
		CreatedAt    time.Time  `json:"createdAt"`
		ClickCount   int        `json:"clickCount"`
		LastAccessed *time.Time `json:"lastAccessed"`
	}
}

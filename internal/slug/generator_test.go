package slug_test

import (
	"strings"
	"testing"

	"github.com/slinkhq/slink/internal/slug"
	"github.com/stretchr/testify/assert"
)

const (
	urlChars  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	noteChars = "abcdefghijklmnopqrstuvwxyz0123456789"
)

func TestNewURLGenerator(t *testing.T) {
	gen := slug.NewURLGenerator()

	t.Run("produces slugs of the configured length", func(t *testing.T) {
		for range 100 {
			assert.Len(t, gen(), slug.URLLength)
		}
	})

	t.Run("only uses mixed-case alphanumerics", func(t *testing.T) {
		for range 100 {
			s := gen()
			for _, c := range s {
				assert.True(t, strings.ContainsRune(urlChars, c), "unexpected character %q in %q", c, s)
			}
		}
	})

	t.Run("does not repeat immediately", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 1000 {
			seen[gen()] = true
		}
		// 62^6 possibilities; 1000 draws colliding down to a handful
		// would indicate a broken generator.
		assert.Greater(t, len(seen), 990)
	})
}

func TestNewNoteGenerator(t *testing.T) {
	gen := slug.NewNoteGenerator()

	t.Run("produces slugs of the configured length", func(t *testing.T) {
		for range 100 {
			assert.Len(t, gen(), slug.NoteLength)
		}
	})

	t.Run("only uses lowercase alphanumerics", func(t *testing.T) {
		for range 100 {
			s := gen()
			for _, c := range s {
				assert.True(t, strings.ContainsRune(noteChars, c), "unexpected character %q in %q", c, s)
			}
		}
	})
}

// Package slug produces the short random identifiers used as storage key
// suffixes and click paths.
package slug

import "github.com/jaevor/go-nanoid"

const (
	urlAlphabet  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	noteAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// URLLength is the slug length for shortened URLs.
	URLLength = 6
	// NoteLength is the slug length for notes. Notes are meant to be
	// short-lived and low-friction, so their slugs are shorter.
	NoteLength = 4
)

// Generator returns a fresh random slug on each call. Characters are drawn
// independently with replacement from the configured alphabet.
type Generator func() string

// NewURLGenerator returns the generator used for URL slugs: 6 characters of
// mixed-case alphanumerics.
func NewURLGenerator() Generator {
	return newGenerator(urlAlphabet, URLLength)
}

// NewNoteGenerator returns the generator used for note slugs: 4 characters of
// lowercase alphanumerics.
func NewNoteGenerator() Generator {
	return newGenerator(noteAlphabet, NoteLength)
}

func newGenerator(alphabet string, length int) Generator {
	gen, err := nanoid.CustomASCII(alphabet, length)
	if err != nil {
		// Alphabets and lengths are compile-time constants, so this can
		// only be a programming error.
		panic(err)
	}

	return gen
}

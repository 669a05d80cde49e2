// Package naming produces web-safe names for uploads and tags.
package naming

import (
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const (
	// DefaultHashLength is the number of random hex characters prepended
	// to derived filenames to avoid key collisions.
	DefaultHashLength = 6

	// MaxHashLength caps the hash prefix length.
	MaxHashLength = 32
)

// Slugify normalizes text to a lowercase, dash-separated slug.
func Slugify(s string) string {
	return slug.Make(s)
}

// DeriveFilename builds a collision-resistant, web-safe filename from an
// uploaded file's original name: hashLen random hex characters, the
// slugified stem, and the original extension unchanged.
// Returns "" for an empty original name; callers must treat that as
// invalid input and abort.
func DeriveFilename(original string, hashLen int) string {
	if original == "" {
		return ""
	}

	if hashLen < 0 {
		hashLen = 0
	}
	if hashLen > MaxHashLength {
		hashLen = MaxHashLength
	}

	ext := path.Ext(original)
	stem := strings.TrimSuffix(original, ext)

	hash := strings.ReplaceAll(uuid.NewString(), "-", "")[:hashLen]

	return hash + Slugify(stem) + ext
}

// DeriveDefaultFilename is DeriveFilename with the default hash length.
func DeriveDefaultFilename(original string) string {
	return DeriveFilename(original, DefaultHashLength)
}

// ParseTags converts raw tag input into an ordered set of normalized tag
// texts. Tags are separated by any whitespace; the web frontend inserts
// non-breaking spaces (U+00A0) between tags, so those split too. Each tag
// is slugified, blanks are dropped, and duplicates keep their first
// position.
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ' '
	})

	seen := make(map[string]struct{}, len(fields))
	tags := make([]string, 0, len(fields))
	for _, field := range fields {
		tag := Slugify(field)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	return tags
}

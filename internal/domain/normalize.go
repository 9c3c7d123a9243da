package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxTags is the maximum number of tags kept on a session or note.
const MaxTags = 20

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
func NormalizeText(text string) string {
	return strings.ToLower(NormalizeName(text))
}

// NormalizeName trims a display name and compresses internal whitespace.
// Case is preserved.
func NormalizeName(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeTags normalizes every tag with NormalizeText, drops empties and
// duplicates, and preserves first-seen order. The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		n := NormalizeText(t)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// MaxTagLength is the maximum rune length of a single normalized tag.
const MaxTagLength = 32

// CheckTags normalizes tags and reports rule violations as field errors
// under field. The normalized slice is returned even when errors are present.
func CheckTags(field string, tags []string) ([]string, []FieldError) {
	normalized := NormalizeTags(tags)

	var errs []FieldError
	if len(normalized) > MaxTags {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("at most %d tags", MaxTags)})
	}
	for _, t := range normalized {
		if utf8.RuneCountInString(t) > MaxTagLength {
			errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("tag %q exceeds %d characters", t, MaxTagLength)})
			break
		}
	}
	return normalized, errs
}

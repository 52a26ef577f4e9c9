package util

import (
	"strings"
	"unicode"
)

// Slugify lower-cases a name and collapses every run of non-alphanumeric
// characters into a single hyphen. Unicode letters are kept, so Russian
// option names slugify cleanly ("Цвет отделки" -> "цвет-отделки").
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

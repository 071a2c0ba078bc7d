// Package slug turns note titles into URL fragments and builds/parses share paths.
//
// A share path has the form /{category}/{slug}-{suffix}, where suffix is the last
// SuffixLen characters of the backend note id. The textual part is decorative: titles
// may change after a link was shared, so only the suffix is used to resolve a note.
package slug

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// MaxLen caps the slug produced by Slugify.
	MaxLen = 60
	// SuffixLen is the number of trailing id characters embedded in a share path.
	SuffixLen = 6
)

// transliterator maps accented Latin letters to ASCII before case folding.
// Runes outside the table pass through and are usually stripped afterwards.
var transliterator = strings.NewReplacer(
	// Turkish
	"ç", "c", "Ç", "C", "ğ", "g", "Ğ", "G", "ı", "i", "İ", "I",
	"ö", "o", "Ö", "O", "ş", "s", "Ş", "S", "ü", "u", "Ü", "U",
	// German
	"ä", "a", "Ä", "A", "ß", "ss",
	// French, Spanish, Portuguese
	"à", "a", "À", "A", "á", "a", "Á", "A", "â", "a", "Â", "A", "ã", "a", "Ã", "A", "å", "a", "Å", "A",
	"æ", "ae", "Æ", "AE",
	"è", "e", "È", "E", "é", "e", "É", "E", "ê", "e", "Ê", "E", "ë", "e", "Ë", "E",
	"ì", "i", "Ì", "I", "í", "i", "Í", "I", "î", "i", "Î", "I", "ï", "i", "Ï", "I",
	"ñ", "n", "Ñ", "N",
	"ò", "o", "Ò", "O", "ó", "o", "Ó", "O", "ô", "o", "Ô", "O", "õ", "o", "Õ", "O", "ø", "o", "Ø", "O",
	"œ", "oe", "Œ", "OE",
	"ù", "u", "Ù", "U", "ú", "u", "Ú", "U", "û", "u", "Û", "U",
	"ý", "y", "Ý", "Y", "ÿ", "y", "Ÿ", "Y",
	// Czech, Polish and other Slavic
	"č", "c", "Č", "C", "ć", "c", "Ć", "C", "ď", "d", "Ď", "D", "ě", "e", "Ě", "E",
	"ň", "n", "Ň", "N", "ń", "n", "Ń", "N", "ř", "r", "Ř", "R", "š", "s", "Š", "S",
	"ś", "s", "Ś", "S", "ť", "t", "Ť", "T", "ů", "u", "Ů", "U", "ž", "z", "Ž", "Z",
	"ź", "z", "Ź", "Z", "ż", "z", "Ż", "Z", "ł", "l", "Ł", "L", "ą", "a", "Ą", "A",
	"ę", "e", "Ę", "E", "đ", "d", "Đ", "D",
)

// Slugify maps text to a lowercase fragment over [a-z0-9-] of at most MaxLen bytes.
// It accepts any input; empty or punctuation-only text yields "".
func Slugify(text string) string {
	// cases.Caser is stateful, so one per call.
	s := cases.Lower(language.Und).String(transliterator.Replace(text))

	var kept strings.Builder
	kept.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			kept.WriteRune(r)
		case unicode.IsSpace(r):
			kept.WriteByte(' ')
		}
	}

	trimmed := strings.TrimSpace(kept.String())

	var b strings.Builder
	b.Grow(len(trimmed))
	hyphen := false
	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		if c == ' ' || c == '-' {
			if !hyphen {
				b.WriteByte('-')
				hyphen = true
			}
			continue
		}
		hyphen = false
		b.WriteByte(c)
	}

	out := b.String()
	if len(out) > MaxLen {
		out = out[:MaxLen]
	}
	return out
}

// Suffix returns the last SuffixLen characters of id, or id itself when shorter.
func Suffix(id string) string {
	if utf8.RuneCountInString(id) <= SuffixLen {
		return id
	}
	r := []rune(id)
	return string(r[len(r)-SuffixLen:])
}

// SharePath builds the public share path for a note.
func SharePath(category, title, id string) string {
	return "/" + category + "/" + Slugify(title) + "-" + Suffix(id)
}

// ParseSuffix extracts the id suffix from a share slug.
// ok is false unless the last hyphen-delimited segment is exactly SuffixLen characters.
func ParseSuffix(s string) (suffix string, ok bool) {
	seg := s
	if i := strings.LastIndexByte(s, '-'); i >= 0 {
		seg = s[i+1:]
	}
	if utf8.RuneCountInString(seg) != SuffixLen {
		return "", false
	}
	return seg, true
}

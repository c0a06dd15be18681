// Package mask implements the display mask engine used to format payment field
// values for presentation and to recover the raw value from formatted input.
//
// A mask mixes literal characters with placeholder groups written as {{...}}.
// Every character inside a group is a class marker that stands for exactly one
// input character:
//
//	9  a digit
//	a  a letter
//	*  any character
//
// For example the mask "{{99}}/{{99}}" formats "1244" as "12/44".
package mask

import (
	"strings"
	"unicode"
)

const (
	groupOpen  = "{{"
	groupClose = "}}"
)

// Class identifies the kind of character a placeholder accepts.
type Class rune

const (
	// ClassDigit accepts a decimal digit.
	ClassDigit Class = '9'
	// ClassLetter accepts a letter.
	ClassLetter Class = 'a'
	// ClassAny accepts any character.
	ClassAny Class = '*'
)

// Accepts reports whether r belongs to the class. Unknown markers behave like ClassAny.
func (c Class) Accepts(r rune) bool {
	switch c {
	case ClassDigit:
		return unicode.IsDigit(r)
	case ClassLetter:
		return unicode.IsLetter(r)
	default:
		return true
	}
}

// token is one position of a parsed mask: either a literal rune that is always
// emitted, or a placeholder that consumes one input rune.
type token struct {
	value       rune
	placeholder bool
}

// Mask is a display pattern. The zero value is an empty mask that formats every
// input to the empty string.
type Mask string

// tokens expands the mask into positions. An opening "{{" without a matching
// "}}" is treated as literal text.
func (m Mask) tokens() []token {
	s := string(m)
	var out []token
	for len(s) > 0 {
		if strings.HasPrefix(s, groupOpen) {
			end := strings.Index(s[len(groupOpen):], groupClose)
			if end >= 0 {
				for _, r := range s[len(groupOpen) : len(groupOpen)+end] {
					out = append(out, token{value: r, placeholder: true})
				}
				s = s[len(groupOpen)+end+len(groupClose):]
				continue
			}
		}
		r := []rune(s)[0]
		out = append(out, token{value: r})
		s = s[len(string(r)):]
	}
	return out
}

// Format renders input through the mask. Literals are emitted as they are met;
// scanning stops at the first placeholder for which no input remains, so a
// separator that precedes an exhausted group is still emitted. Input beyond the
// mask capacity is dropped.
func (m Mask) Format(input string) string {
	in := []rune(input)
	cursor := 0

	var b strings.Builder
	for _, t := range m.tokens() {
		if !t.placeholder {
			b.WriteRune(t.value)
			continue
		}
		if cursor >= len(in) {
			break
		}
		b.WriteRune(in[cursor])
		cursor++
	}
	return b.String()
}

// Unformat strips the literal positions of the mask from a formatted value and
// returns the characters aligned with placeholders.
func (m Mask) Unformat(masked string) string {
	in := []rune(masked)

	var b strings.Builder
	for i, t := range m.tokens() {
		if i >= len(in) {
			break
		}
		if t.placeholder {
			b.WriteRune(in[i])
		}
	}
	return b.String()
}

// Relax returns a mask with the same literals and group lengths where every
// class marker is replaced by the wildcard, so only length is constrained.
func (m Mask) Relax() Mask {
	s := string(m)

	var b strings.Builder
	for len(s) > 0 {
		if strings.HasPrefix(s, groupOpen) {
			end := strings.Index(s[len(groupOpen):], groupClose)
			if end >= 0 {
				group := s[len(groupOpen) : len(groupOpen)+end]
				b.WriteString(groupOpen)
				b.WriteString(strings.Repeat(string(ClassAny), len([]rune(group))))
				b.WriteString(groupClose)
				s = s[len(groupOpen)+end+len(groupClose):]
				continue
			}
		}
		r := []rune(s)[0]
		b.WriteRune(r)
		s = s[len(string(r)):]
	}
	return Mask(b.String())
}

// MaxLength returns the number of placeholder positions, which is the longest
// raw value the mask can display.
func (m Mask) MaxLength() int {
	n := 0
	for _, t := range m.tokens() {
		if t.placeholder {
			n++
		}
	}
	return n
}

// Matches reports whether every rune of the raw value is accepted by the
// placeholder it would occupy. Values longer than MaxLength never match.
func (m Mask) Matches(raw string) bool {
	in := []rune(raw)
	cursor := 0
	for _, t := range m.tokens() {
		if !t.placeholder {
			continue
		}
		if cursor >= len(in) {
			return true
		}
		if !Class(t.value).Accepts(in[cursor]) {
			return false
		}
		cursor++
	}
	return cursor == len(in)
}

// IsEmpty reports whether the mask has no positions at all.
func (m Mask) IsEmpty() bool {
	return m == ""
}

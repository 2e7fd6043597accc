package toxml

import (
	"strings"
	"unicode/utf8"
)

// fallbackName replaces an empty key.
const fallbackName = "_element"

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeText escapes the five XML special characters in s.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// SanitizeName turns name into a valid XML element name. Characters outside
// [A-Za-z0-9_-] become '_', and a name that does not start with a letter or
// underscore gets a leading '_'. Characters beyond the Basic Multilingual
// Plane count as two, matching their UTF-16 length.
func SanitizeName(name string) string {
	if name == "" {
		return fallbackName
	}

	var sb strings.Builder
	sb.Grow(len(name) + 1)

	if c := name[0]; !isNameStart(c) && isNameChar(c) {
		sb.WriteByte('_')
	}

	for _, r := range name {
		switch {
		case r < utf8.RuneSelf && isNameChar(byte(r)):
			sb.WriteRune(r)
		case r > 0xFFFF:
			sb.WriteString("__")
		default:
			sb.WriteByte('_')
		}
	}

	return sb.String()
}

func isNameStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || c == '-' || ('0' <= c && c <= '9')
}

const upperHex = "0123456789ABCDEF"

// PercentEncode escapes every byte of s except ASCII letters, digits and
// the marks - _ . ! ~ * ' ( ), the same set a URI component leaves alone.
func PercentEncode(s string) string {
	n := 0
	for i := range len(s) {
		if !isUnreserved(s[i]) {
			n++
		}
	}

	if n == 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 2*n)

	for i := range len(s) {
		c := s[i]
		if isUnreserved(c) {
			sb.WriteByte(c)
			continue
		}

		sb.WriteByte('%')
		sb.WriteByte(upperHex[c>>4])
		sb.WriteByte(upperHex[c&0x0f])
	}

	return sb.String()
}

func isUnreserved(c byte) bool {
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}

	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

package output

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// QuoteString renders s as a double-quoted JavaScript string literal.
//
// Only escapes valid in JavaScript are produced. Code points outside the
// basic multilingual plane become surrogate pair escapes, control and
// invisible format characters become \uXXXX, and invalid UTF-8 bytes are
// replaced by U+FFFD.
func QuoteString(s string) string {
	var sb strings.Builder

	sb.Grow(len(s) + 2)
	sb.WriteByte('"')

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\v':
			sb.WriteString(`\v`)
		default:
			writeRune(&sb, r)
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

func writeRune(sb *strings.Builder, r rune) {
	switch {
	case r > 0xFFFF:
		hi, lo := utf16.EncodeRune(r)
		fmt.Fprintf(sb, `\u%04x\u%04x`, hi, lo)
	case r < 0x20, r == 0x7F, r == '\u2028', r == '\u2029', r == utf8.RuneError, unicode.Is(unicode.Cf, r):
		fmt.Fprintf(sb, `\u%04x`, r)
	default:
		sb.WriteRune(r)
	}
}

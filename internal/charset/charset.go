// Package charset guesses the text encoding of uploaded files.
//
// Only two encodings are considered: UTF-8 and the Cyrillic code page
// Windows-1251. The check is a heuristic over the UTF-8 reading of the bytes,
// so a wrong guess is silent rather than an error.
package charset

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

type Encoding string

const (
	UTF8        Encoding = "utf-8"
	Windows1251 Encoding = "windows-1251"
)

func (e Encoding) String() string {
	return string(e)
}

// mojibake holds box-drawing glyphs that show up when Cyrillic text has been
// read through the wrong single-byte code page.
const mojibake = "╨╤╟╫╣╥"

// Detect decodes raw as UTF-8, or as Windows-1251 when the UTF-8 reading
// contains replacement characters or mojibake glyphs. It never fails: an empty
// buffer is UTF-8 text "".
func Detect(raw []byte) (string, Encoding) {
	text := DecodeUTF8(raw)
	if !LooksMisdecoded(text) {
		return text, UTF8
	}

	decoded, err := charmap.Windows1251.NewDecoder().Bytes(raw)
	if err != nil {
		return text, UTF8
	}
	return string(decoded), Windows1251
}

// DecodeUTF8 returns raw as a string with every invalid byte sequence replaced
// by U+FFFD. Valid input is returned unchanged.
func DecodeUTF8(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}

	var b strings.Builder
	b.Grow(len(raw) + 8)
	for len(raw) > 0 {
		r, size := utf8.DecodeRune(raw)
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
		} else {
			b.Write(raw[:size])
		}
		raw = raw[size:]
	}
	return b.String()
}

func LooksMisdecoded(text string) bool {
	return strings.ContainsRune(text, utf8.RuneError) || strings.ContainsAny(text, mojibake)
}

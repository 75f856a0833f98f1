// Package textenc decodes raw grammar-input bytes to UTF-8 text. Byte
// order marks are honored regardless of the declared encoding, so callers
// can pass files through without sniffing them first.
package textenc

import (
	"encoding/binary"
	"errors"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding names accepted by Decode. The empty string means UTF-8.
const (
	EncodingUTF8    = "UTF-8"
	EncodingUTF16LE = "UTF-16LE"
	EncodingUTF16BE = "UTF-16BE"
	EncodingLatin1  = "LATIN-1"
	EncodingWin1252 = "WINDOWS-1252"
)

var (
	utf8BOM    = []byte{0xef, 0xbb, 0xbf}
	utf16LEBOM = []byte{0xff, 0xfe}
	utf16BEBOM = []byte{0xfe, 0xff}
)

// ErrUnsupportedEncoding is returned for encoding names Decode does not
// recognize.
var ErrUnsupportedEncoding = errors.New("textenc: unsupported encoding")

const utf16CodeUnitSize = 2

// Decode converts input data to UTF-8 text. A BOM, when present, wins
// over the declared encoding and is stripped from the result.
func Decode(data []byte, enc string) (string, error) {
	if len(data) >= len(utf16LEBOM) {
		switch {
		case data[0] == utf16LEBOM[0] && data[1] == utf16LEBOM[1]:
			return decodeUTF16(data[len(utf16LEBOM):], binary.LittleEndian), nil
		case data[0] == utf16BEBOM[0] && data[1] == utf16BEBOM[1]:
			return decodeUTF16(data[len(utf16BEBOM):], binary.BigEndian), nil
		}
	}
	if len(data) >= len(utf8BOM) && data[0] == utf8BOM[0] && data[1] == utf8BOM[1] && data[2] == utf8BOM[2] {
		data = data[len(utf8BOM):]
	}

	switch strings.ToUpper(enc) {
	case "", EncodingUTF8:
		return string(data), nil
	case EncodingUTF16LE:
		return decodeUTF16(data, binary.LittleEndian), nil
	case EncodingUTF16BE:
		return decodeUTF16(data, binary.BigEndian), nil
	case EncodingLatin1:
		return decodeCharmap(data, charmap.ISO8859_1)
	case EncodingWin1252:
		return decodeCharmap(data, charmap.Windows1252)
	default:
		return "", ErrUnsupportedEncoding
	}
}

// decodeUTF16 converts UTF-16 data with the given byte order to UTF-8.
// A trailing odd byte is dropped.
func decodeUTF16(data []byte, order binary.ByteOrder) string {
	if len(data)%utf16CodeUnitSize == 1 {
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		return ""
	}
	words := make([]uint16, len(data)/utf16CodeUnitSize)
	for i := 0; i < len(words); i++ {
		words[i] = order.Uint16(data[i*utf16CodeUnitSize:])
	}
	return string(utf16.Decode(words))
}

// decodeCharmap converts single-byte code page data to UTF-8.
func decodeCharmap(data []byte, cm *charmap.Charmap) (string, error) {
	out, _, err := transform.Bytes(cm.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

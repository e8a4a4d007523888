package jsondoc

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Encoding identifies the text encoding of a document's source bytes
type Encoding int

const (
	UTF8 Encoding = iota
	UTF8BOM
	UTF16LE
	UTF16LENoBOM
	UTF16BE
	UTF16BENoBOM
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case UTF8BOM:
		return "utf-8 (bom)"
	case UTF16LE:
		return "utf-16le (bom)"
	case UTF16LENoBOM:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be (bom)"
	case UTF16BENoBOM:
		return "utf-16be"
	default:
		return "unknown"
	}
}

// codec returns the x/text encoding for e, nil for plain UTF-8
func (e Encoding) codec() encoding.Encoding {
	switch e {
	case UTF8BOM:
		return unicode.UTF8BOM
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case UTF16LENoBOM:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case UTF16BENoBOM:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	default:
		return nil
	}
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectEncoding guesses the encoding of JSON source bytes.
// Without a byte order mark, a zero byte in the first code unit marks UTF-16;
// JSON text always starts with an ASCII character.
func DetectEncoding(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return UTF8BOM
	case bytes.HasPrefix(data, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return UTF16BE
	case len(data) >= 2 && data[0] != 0 && data[1] == 0:
		return UTF16LENoBOM
	case len(data) >= 2 && data[0] == 0 && data[1] != 0:
		return UTF16BENoBOM
	default:
		return UTF8
	}
}

// Decode converts source bytes to UTF-8 and reports the detected encoding
func Decode(data []byte) ([]byte, Encoding, error) {
	enc := DetectEncoding(data)
	codec := enc.codec()
	if codec == nil {
		return data, enc, nil
	}
	text, err := codec.NewDecoder().Bytes(data)
	if err != nil {
		return nil, enc, err
	}
	return text, enc, nil
}

// encode converts UTF-8 text back to enc
func encode(text []byte, enc Encoding) ([]byte, error) {
	codec := enc.codec()
	if codec == nil {
		return text, nil
	}
	return codec.NewEncoder().Bytes(text)
}

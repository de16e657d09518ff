package note

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

const (
	textDetectionSampleSize      = 4096
	nonPrintableThresholdPercent = 30
)

// Encoding is the byte encoding a note file was read in. Saving writes the
// note back in the same encoding, BOM included.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

// looksLikeText sniffs the head of content. BOM-marked content always
// counts as text; otherwise NUL bytes or a high share of control bytes mark
// the file as binary.
func looksLikeText(content []byte) bool {
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > textDetectionSampleSize {
		sample = sample[:textDetectionSampleSize]
	}

	if detectUnicodeEncoding(sample) != EncodingUTF8 {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isCommonTextByte(b) {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

func isCommonTextByte(b byte) bool {
	switch {
	case b == 0x09 || b == 0x0A || b == 0x0D:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	case b >= 0x80:
		return true
	default:
		return false
	}
}

func detectUnicodeEncoding(sample []byte) Encoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return EncodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return EncodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return EncodingUTF16BE
		}
	}
	return EncodingUTF8
}

// decodeText converts BOM-marked content to a UTF-8 string. Content without
// a BOM is taken as UTF-8 as-is.
func decodeText(content []byte) (string, Encoding) {
	enc := detectUnicodeEncoding(content)
	switch enc {
	case EncodingUTF8BOM:
		return string(content[3:]), enc
	case EncodingUTF16LE, EncodingUTF16BE:
		out, err := utf16Encoding(enc).NewDecoder().Bytes(content)
		if err != nil {
			return string(content), EncodingUTF8
		}
		return string(out), enc
	default:
		return string(content), EncodingUTF8
	}
}

// encodeText converts UTF-8 text to enc, writing the BOM enc implies.
func encodeText(text []byte, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingUTF8BOM:
		return unicode.UTF8BOM.NewEncoder().Bytes(text)
	case EncodingUTF16LE, EncodingUTF16BE:
		return utf16Encoding(enc).NewEncoder().Bytes(text)
	default:
		return text, nil
	}
}

func utf16Encoding(enc Encoding) encoding.Encoding {
	endian := unicode.LittleEndian
	if enc == EncodingUTF16BE {
		endian = unicode.BigEndian
	}
	return unicode.UTF16(endian, unicode.ExpectBOM)
}

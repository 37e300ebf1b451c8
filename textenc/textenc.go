// Package textenc turns raw payload bytes into UTF-8 before they are
// decoded, so JSON and YAML documents sent in a legacy charset or with a
// byte-order mark can still be validated.
package textenc

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/amp-labs/amp-schema/errors"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// UTF8 is the name returned for input that needed no conversion.
const UTF8 = "utf-8"

var boms = [][]byte{ //nolint:gochecknoglobals
	{0xEF, 0xBB, 0xBF}, // UTF-8
	{0xFE, 0xFF},       // UTF-16BE
	{0xFF, 0xFE},       // UTF-16LE
}

// ToUTF8 returns data as UTF-8 along with the name of the charset it was
// decoded from. A non-empty hint (e.g. the charset parameter of a
// Content-Type header) is tried first. Otherwise a byte-order mark decides,
// then valid UTF-8 is returned untouched, and anything else is run through
// charset detection. The error wraps errors.ErrMalformedInput.
func ToUTF8(data []byte, hint string) ([]byte, string, error) {
	if hint != "" {
		if out, err := decodeLabel(data, hint); err == nil {
			return out, hint, nil
		}
	}

	if hasBOM(data) {
		out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", errors.ErrMalformedInput, err)
		}

		return out, UTF8, nil
	}

	if utf8.Valid(data) {
		return data, UTF8, nil
	}

	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return nil, "", fmt.Errorf("%w: input is not UTF-8 and its charset is unknown", errors.ErrMalformedInput)
	}

	out, err := decodeLabel(data, best.Charset)
	if err != nil {
		return nil, "", err
	}

	return out, best.Charset, nil
}

func decodeLabel(data []byte, label string) ([]byte, error) {
	reader, err := charset.NewReaderLabel(label, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: charset %q: %w", errors.ErrMalformedInput, label, err)
	}

	out, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: charset %q: %w", errors.ErrMalformedInput, label, err)
	}

	if !utf8.Valid(out) {
		return nil, fmt.Errorf("%w: charset %q did not produce UTF-8", errors.ErrMalformedInput, label)
	}

	return out, nil
}

func hasBOM(data []byte) bool {
	for _, bom := range boms {
		if bytes.HasPrefix(data, bom) {
			return true
		}
	}

	return false
}

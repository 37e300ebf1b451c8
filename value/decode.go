package value

import (
	"bytes"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"io"

	"github.com/amp-labs/amp-schema/errors"
	"github.com/amp-labs/amp-schema/textenc"
	"gopkg.in/yaml.v3"
)

// FromJSON decodes a single JSON document. Object keys keep their document
// order, integral numbers become ints and other numbers floats. Input that
// is not UTF-8 is converted first (see textenc.ToUTF8).
func FromJSON(data []byte) (Value, error) {
	data, _, err := textenc.ToUTF8(data, "")
	if err != nil {
		return Null(), err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	val, err := decodeJSON(dec)
	if err != nil {
		return Null(), fmt.Errorf("%w: %w", errors.ErrMalformedInput, err)
	}

	if _, err := dec.Token(); !goerrors.Is(err, io.EOF) {
		return Null(), fmt.Errorf("%w: trailing data after JSON document", errors.ErrMalformedInput)
	}

	return val, nil
}

func decodeJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Null(), err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			return decodeJSONArray(dec)
		case '{':
			return decodeJSONObject(dec)
		default:
			return Null(), fmt.Errorf("unexpected delimiter %q", t)
		}
	case json.Number:
		return fromNumber(string(t), "")
	default:
		return FromAny(t)
	}
}

func decodeJSONArray(dec *json.Decoder) (Value, error) {
	var elems []Value

	for dec.More() {
		elem, err := decodeJSON(dec)
		if err != nil {
			return Null(), err
		}

		elems = append(elems, elem)
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return Null(), err
	}

	return List(elems...), nil
}

func decodeJSONObject(dec *json.Decoder) (Value, error) {
	var entries []Entry

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Null(), err
		}

		key, ok := tok.(string)
		if !ok {
			return Null(), fmt.Errorf("object key %v is not a string", tok)
		}

		elem, err := decodeJSON(dec)
		if err != nil {
			return Null(), err
		}

		entries = append(entries, Entry{Key: key, Value: elem})
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return Null(), err
	}

	return Map(entries...), nil
}

// FromYAML decodes a single YAML document through the node tree so mapping
// keys keep their document order. Timestamps are kept as text; temporal
// validators parse them like any other ISO-8601 string. An empty document
// is null. Input that is not UTF-8 is converted first.
func FromYAML(data []byte) (Value, error) {
	data, _, err := textenc.ToUTF8(data, "")
	if err != nil {
		return Null(), err
	}

	var doc yaml.Node

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Null(), fmt.Errorf("%w: %w", errors.ErrMalformedInput, err)
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Null(), nil
	}

	val, err := fromNode(&doc)
	if err != nil {
		return Null(), fmt.Errorf("%w: %w", errors.ErrMalformedInput, err)
	}

	return val, nil
}

func fromNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}

		return fromNode(node.Content[0])
	case yaml.AliasNode:
		return fromNode(node.Alias)
	case yaml.SequenceNode:
		elems := make([]Value, 0, len(node.Content))

		for _, child := range node.Content {
			elem, err := fromNode(child)
			if err != nil {
				return Null(), err
			}

			elems = append(elems, elem)
		}

		return List(elems...), nil
	case yaml.MappingNode:
		return fromMappingNode(node)
	case yaml.ScalarNode:
		return fromScalarNode(node)
	default:
		return Null(), fmt.Errorf("line %d: unsupported node kind %d", node.Line, node.Kind)
	}
}

func fromMappingNode(node *yaml.Node) (Value, error) {
	entries := make([]Entry, 0, len(node.Content)/2) //nolint:mnd

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind == yaml.AliasNode {
			keyNode = keyNode.Alias
		}

		if keyNode.Kind != yaml.ScalarNode {
			return Null(), fmt.Errorf("line %d: mapping key is not a scalar", keyNode.Line)
		}

		elem, err := fromNode(valNode)
		if err != nil {
			return Null(), err
		}

		entries = append(entries, Entry{Key: keyNode.Value, Value: elem})
	}

	return Map(entries...), nil
}

func fromScalarNode(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Null(), err
		}

		return Bool(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err == nil {
			return Int(i), nil
		}

		fallthrough
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return Null(), err
		}

		return Float(f), nil
	default:
		return String(node.Value), nil
	}
}

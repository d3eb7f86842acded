package fieldgroup

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Shape identifies the top-level form of a field-group file. An export may be
// either one descriptor object or an array of descriptors; the distinction is
// decided once here, at the parse boundary, and callers only ever see the
// normalized slice.
type Shape int

const (
	// ShapeNone means the file held no usable descriptors.
	ShapeNone Shape = iota
	// ShapeSingle means the file was a single descriptor object.
	ShapeSingle
	// ShapeMany means the file was an array of descriptors.
	ShapeMany
)

// Decode parses raw acf.json content and normalizes both accepted top-level
// shapes into a slice of descriptors. Malformed JSON returns an error; the
// importer downgrades that to a no-op per the one-bad-block rule.
func Decode(data []byte) (Shape, []*Descriptor, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ShapeNone, nil, nil
	}

	switch trimmed[0] {
	case '[':
		var many []*Descriptor
		if err := json.Unmarshal(trimmed, &many); err != nil {
			return ShapeNone, nil, fmt.Errorf("decoding field-group array: %w", err)
		}
		if len(many) == 0 {
			return ShapeNone, nil, nil
		}
		return ShapeMany, many, nil
	case '{':
		var single Descriptor
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return ShapeNone, nil, fmt.Errorf("decoding field-group object: %w", err)
		}
		return ShapeSingle, []*Descriptor{&single}, nil
	default:
		return ShapeNone, nil, fmt.Errorf("field-group file is neither an object nor an array")
	}
}

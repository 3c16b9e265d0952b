package asil

import "gopkg.in/yaml.v3"

// Text and YAML codecs so levels and tags can be embedded directly in
// requirement document front-matter. Unmarshaling goes through the strict
// parser: construction stays the single validation gate, and a decoded
// value can never violate the tag invariant.

// MarshalText implements encoding.TextMarshaler using the exact level
// token. encoding/json picks this up for map keys and struct fields.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, &ParseError{Kind: ErrUnknownLevel, Input: l.String(), Pos: -1}
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseLevel.
func (l *Level) UnmarshalText(text []byte) error {
	lvl, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}

// MarshalYAML implements yaml.Marshaler using the exact level token.
func (l Level) MarshalYAML() (interface{}, error) {
	if !l.Valid() {
		return nil, &ParseError{Kind: ErrUnknownLevel, Input: l.String(), Pos: -1}
	}
	return l.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler via ParseLevel.
func (l *Level) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	lvl, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}

// MarshalText implements encoding.TextMarshaler using the canonical
// notation.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via the strict Parse.
func (t *Tag) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler using the canonical notation.
func (t Tag) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler via the strict Parse.
func (t *Tag) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

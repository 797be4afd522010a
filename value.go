package flagtok

import (
	"encoding/json"
)

type valueKind uint8

const (
	kindInvalid valueKind = iota
	kindString
	kindPresence
)

// Value is the value recorded for a flag. It is either a string, supplied inline (--name=value) or
// by the following token, or a presence marker for a flag that appeared without a value.
//
// The zero Value is neither; Parse never produces it.
type Value struct {
	kind valueKind
	s    string
}

// StringValue returns a Value holding s. An empty s is still a string value, not presence.
func StringValue(s string) Value {
	return Value{kind: kindString, s: s}
}

// Presence returns the Value recorded for a flag given without a value, like a trailing --verbose.
func Presence() Value {
	return Value{kind: kindPresence}
}

// IsPresence reports whether v marks a flag that appeared without a value.
func (v Value) IsPresence() bool {
	return v.kind == kindPresence
}

// Str returns the string held by v. The boolean is false for presence values, so callers never
// confuse a bare flag with a flag whose value happens to be "true".
func (v Value) Str() (string, bool) {
	if v.kind != kindString {
		return "", false
	}
	return v.s, true
}

// String formats v for display. Presence is rendered as "true".
func (v Value) String() string {
	switch v.kind {
	case kindString:
		return v.s
	case kindPresence:
		return "true"
	}
	return ""
}

// MarshalJSON encodes a string value as a JSON string and presence as the JSON literal true.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindString:
		return json.Marshal(v.s)
	case kindPresence:
		return []byte("true"), nil
	}
	return []byte("null"), nil
}

package noise

import (
	"fmt"
	"strings"
)

// Type selects the filter recurrence applied to the white source.
type Type int

const (
	White Type = iota
	Pink
	Brown
	Blue
	Gray
)

var typeNames = [...]string{
	White: "white",
	Pink:  "pink",
	Brown: "brown",
	Blue:  "blue",
	Gray:  "gray",
}

// Types returns all supported noise types in declaration order.
func Types() []Type {
	return []Type{White, Pink, Brown, Blue, Gray}
}

// Valid reports whether t is one of the supported noise types.
func (t Type) Valid() bool {
	return t >= White && t <= Gray
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// ParseType resolves a case-insensitive noise type name.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range Types() {
		if typeNames[t] == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return []byte(typeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

package codec

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// EnumError reports a value outside an enumeration's table.
type EnumError struct {
	Enum     string   // Name of the enumeration (for example "AlphaMode").
	Got      string   // The rejected value as it appeared in the input.
	Accepted []string // Every accepted external representation, in table order.
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("invalid value: %s for %s; expected one of %s", e.Got, e.Enum, strings.Join(e.Accepted, ", "))
}

// Token pairs an enumerator with its string representation.
type Token[T comparable] struct {
	Value T
	Label string
}

// Code pairs an enumerator with its numeric representation.
type Code[T comparable] struct {
	Value T
	Code  uint64
}

// Tokens is a table-driven codec for enumerations whose external
// representation is a fixed string.
type Tokens[T comparable] struct {
	name     string
	table    []Token[T]
	byLabel  map[string]T
	byValue  map[T]string
	accepted []string
}

// NewTokens builds a string-token codec. The table order is kept for error
// messages. It panics when a value or label appears twice.
func NewTokens[T comparable](name string, table ...Token[T]) *Tokens[T] {
	c := &Tokens[T]{
		name:    name,
		table:   table,
		byLabel: make(map[string]T, len(table)),
		byValue: make(map[T]string, len(table)),
	}
	for _, t := range table {
		if _, dup := c.byLabel[t.Label]; dup {
			panic(fmt.Sprintf("codec: %s: duplicate token %q", name, t.Label))
		}
		if _, dup := c.byValue[t.Value]; dup {
			panic(fmt.Sprintf("codec: %s: duplicate enumerator for token %q", name, t.Label))
		}
		c.byLabel[t.Label] = t.Value
		c.byValue[t.Value] = t.Label
		c.accepted = append(c.accepted, strconv.Quote(t.Label))
	}
	return c
}

// Name returns the enumeration name used in error messages.
func (c *Tokens[T]) Name() string { return c.name }

// Labels returns the accepted tokens in table order.
func (c *Tokens[T]) Labels() []string {
	out := make([]string, len(c.table))
	for i, t := range c.table {
		out[i] = t.Label
	}
	return out
}

// Decode maps a token to its enumerator.
func (c *Tokens[T]) Decode(s string) (T, error) {
	if v, ok := c.byLabel[s]; ok {
		return v, nil
	}
	var zero T
	return zero, &EnumError{Enum: c.name, Got: strconv.Quote(s), Accepted: c.accepted}
}

// Encode maps an enumerator to its token.
func (c *Tokens[T]) Encode(v T) (string, error) {
	if s, ok := c.byValue[v]; ok {
		return s, nil
	}
	return "", fmt.Errorf("codec: %s: value %v has no token", c.name, v)
}

// Unmarshal decodes a JSON string into dst.
func (c *Tokens[T]) Unmarshal(data []byte, dst *T) error {
	var s string
	if isNull(data) {
		return &EnumError{Enum: c.name, Got: "null", Accepted: c.accepted}
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return &EnumError{Enum: c.name, Got: string(data), Accepted: c.accepted}
	}
	v, err := c.Decode(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Marshal encodes v as a JSON string.
func (c *Tokens[T]) Marshal(v T) ([]byte, error) {
	s, err := c.Encode(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// Codes is a table-driven codec for enumerations whose external
// representation is an unsigned numeric constant, such as GL enums.
type Codes[T comparable] struct {
	name     string
	table    []Code[T]
	byCode   map[uint64]T
	byValue  map[T]uint64
	accepted []string
}

// NewCodes builds a numeric-code codec. It panics when a value or code
// appears twice.
func NewCodes[T comparable](name string, table ...Code[T]) *Codes[T] {
	c := &Codes[T]{
		name:    name,
		table:   table,
		byCode:  make(map[uint64]T, len(table)),
		byValue: make(map[T]uint64, len(table)),
	}
	for _, t := range table {
		if _, dup := c.byCode[t.Code]; dup {
			panic(fmt.Sprintf("codec: %s: duplicate code %d", name, t.Code))
		}
		if _, dup := c.byValue[t.Value]; dup {
			panic(fmt.Sprintf("codec: %s: duplicate enumerator for code %d", name, t.Code))
		}
		c.byCode[t.Code] = t.Value
		c.byValue[t.Value] = t.Code
		c.accepted = append(c.accepted, strconv.FormatUint(t.Code, 10))
	}
	return c
}

// Name returns the enumeration name used in error messages.
func (c *Codes[T]) Name() string { return c.name }

// Values returns the accepted codes in table order.
func (c *Codes[T]) Values() []uint64 {
	out := make([]uint64, len(c.table))
	for i, t := range c.table {
		out[i] = t.Code
	}
	return out
}

// Decode maps a code to its enumerator.
func (c *Codes[T]) Decode(n uint64) (T, error) {
	if v, ok := c.byCode[n]; ok {
		return v, nil
	}
	var zero T
	return zero, &EnumError{Enum: c.name, Got: strconv.FormatUint(n, 10), Accepted: c.accepted}
}

// Encode maps an enumerator to its code.
func (c *Codes[T]) Encode(v T) (uint64, error) {
	if n, ok := c.byValue[v]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("codec: %s: value %v has no code", c.name, v)
}

// Unmarshal decodes a JSON unsigned integer into dst.
func (c *Codes[T]) Unmarshal(data []byte, dst *T) error {
	var n uint64
	if isNull(data) {
		return &EnumError{Enum: c.name, Got: "null", Accepted: c.accepted}
	}
	if err := json.Unmarshal(data, &n); err != nil {
		return &EnumError{Enum: c.name, Got: string(data), Accepted: c.accepted}
	}
	v, err := c.Decode(n)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// Marshal encodes v as a JSON unsigned integer.
func (c *Codes[T]) Marshal(v T) ([]byte, error) {
	n, err := c.Encode(v)
	if err != nil {
		return nil, err
	}
	return strconv.AppendUint(nil, n, 10), nil
}

func isNull(data []byte) bool { return bytes.Equal(bytes.TrimSpace(data), []byte("null")) }

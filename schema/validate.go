package schema

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned by Check when the payload does not parse
var ErrInvalidJSON = errors.New("invalid json")

// MismatchError reports a value whose JSON kind differs from the schema
type MismatchError struct {
	Path     string
	Expected Type
	Got      string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Path, e.Expected, e.Got)
}

// Check validates raw against the schema. Missing members and null members
// are accepted; the parsers default them to empty values. Null array
// elements are not, since an element has no default. Present values must
// have the declared kind.
func (s *Schema) Check(raw string) error {
	if !gjson.Valid(raw) {
		return ErrInvalidJSON
	}
	root := gjson.Parse(raw)
	if root.Type == gjson.Null {
		return &MismatchError{Path: "$", Expected: s.Type, Got: kindOf(root)}
	}
	return s.check("$", root)
}

func (s *Schema) check(path string, v gjson.Result) error {
	if v.Type == gjson.Null {
		return nil
	}
	switch s.Type {
	case TypeObject:
		if !v.IsObject() {
			return &MismatchError{Path: path, Expected: s.Type, Got: kindOf(v)}
		}
		members := v.Map()
		for _, name := range s.OrderedProperties() {
			member, ok := members[name]
			if !ok {
				continue
			}
			if err := s.Properties[name].check(path+"."+name, member); err != nil {
				return err
			}
		}
	case TypeArray:
		if !v.IsArray() {
			return &MismatchError{Path: path, Expected: s.Type, Got: kindOf(v)}
		}
		if s.Items == nil {
			return nil
		}
		for idx, item := range v.Array() {
			itemPath := path + "[" + strconv.Itoa(idx) + "]"
			if item.Type == gjson.Null {
				return &MismatchError{Path: itemPath, Expected: s.Items.Type, Got: kindOf(item)}
			}
			if err := s.Items.check(itemPath, item); err != nil {
				return err
			}
		}
	case TypeString:
		if v.Type != gjson.String {
			return &MismatchError{Path: path, Expected: s.Type, Got: kindOf(v)}
		}
	case TypeNumber, TypeInteger:
		if v.Type != gjson.Number {
			return &MismatchError{Path: path, Expected: s.Type, Got: kindOf(v)}
		}
	case TypeBoolean:
		if !v.IsBool() {
			return &MismatchError{Path: path, Expected: s.Type, Got: kindOf(v)}
		}
	}
	return nil
}

func kindOf(v gjson.Result) string {
	switch {
	case v.IsObject():
		return "object"
	case v.IsArray():
		return "array"
	case v.IsBool():
		return "boolean"
	}
	switch v.Type {
	case gjson.String:
		return "string"
	case gjson.Number:
		return "number"
	case gjson.Null:
		return "null"
	}
	return "unknown"
}

package schema

// Type is the JSON type of a schema node
type Type string

const (
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
)

// Schema is a declarative description of the shape a structured model
// response must have. It is translated into each provider's native
// response schema and used to re-validate responses before they are merged.
type Schema struct {
	// Type of the node
	Type Type `json:"type" yaml:"type"`
	// Description is passed to the model as a hint
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Properties of an object node
	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	// PropertyOrdering keeps the declaration order of Properties
	PropertyOrdering []string `json:"-" yaml:"-"`
	// Items is the element schema of an array node
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`
	// Required property names of an object node
	Required []string `json:"required,omitempty" yaml:"required,omitempty"`
	// Enum limits a string node to a fixed set of values
	Enum []string `json:"enum,omitempty" yaml:"enum,omitempty"`
}

// Property is a named object member used by Object
type Property struct {
	Name   string
	Schema *Schema
}

// String returns a string node
func String(description string) *Schema {
	return &Schema{Type: TypeString, Description: description}
}

// Array returns an array node of items
func Array(items *Schema, description string) *Schema {
	return &Schema{Type: TypeArray, Items: items, Description: description}
}

// Object returns an object node whose properties keep the given order.
// Every property is required.
func Object(description string, props ...Property) *Schema {
	ret := &Schema{
		Type:             TypeObject,
		Description:      description,
		Properties:       make(map[string]*Schema, len(props)),
		PropertyOrdering: make([]string, 0, len(props)),
		Required:         make([]string, 0, len(props)),
	}
	for _, p := range props {
		ret.Properties[p.Name] = p.Schema
		ret.PropertyOrdering = append(ret.PropertyOrdering, p.Name)
		ret.Required = append(ret.Required, p.Name)
	}
	return ret
}

// Prop is a shortcut for Property
func Prop(name string, s *Schema) Property {
	return Property{Name: name, Schema: s}
}

// OrderedProperties returns property names in declaration order,
// falling back to map order for nodes built without Object.
func (s *Schema) OrderedProperties() []string {
	if len(s.PropertyOrdering) == len(s.Properties) {
		return s.PropertyOrdering
	}
	ret := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		ret = append(ret, k)
	}
	return ret
}

// JSONSchema renders the node as a standard JSON-Schema document
func (s *Schema) JSONSchema() map[string]any {
	if s == nil {
		return nil
	}
	ret := map[string]any{
		"type": string(s.Type),
	}
	if s.Description != "" {
		ret["description"] = s.Description
	}
	if len(s.Enum) > 0 {
		ret["enum"] = s.Enum
	}
	if s.Items != nil {
		ret["items"] = s.Items.JSONSchema()
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.JSONSchema()
		}
		ret["properties"] = props
	}
	if len(s.Required) > 0 {
		ret["required"] = s.Required
	}
	return ret
}

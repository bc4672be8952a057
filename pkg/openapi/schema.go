package openapi

// Schema is the subset of JSON Schema the service's payloads need.
type Schema struct {
	Type        string             `json:"type,omitempty"`
	Format      string             `json:"format,omitempty"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Ref         string             `json:"$ref,omitempty"`
	Example     any                `json:"example,omitempty"`
	Enum        []any              `json:"enum,omitempty"`
}

// Ref points at a named component schema.
func Ref(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

// Object builds an object schema.
func Object(required []string, props map[string]*Schema) *Schema {
	return &Schema{Type: "object", Required: required, Properties: props}
}

// ArrayOf returns an array schema whose items reference the named schema.
func ArrayOf(name string) *Schema {
	return &Schema{Type: "array", Items: Ref(name)}
}

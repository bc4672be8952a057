package openapi

const mediaJSON = "application/json"

// Operation describes one method on a path. Responses are keyed by status.
type Operation struct {
	Summary     string            `json:"summary,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Parameters  []*Parameter      `json:"parameters,omitempty"`
	RequestBody *RequestBody      `json:"requestBody,omitempty"`
	Responses   map[int]*Response `json:"responses"`
}

type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Required    bool    `json:"required,omitempty"`
	Description string  `json:"description,omitempty"`
	Schema      *Schema `json:"schema"`
}

type RequestBody struct {
	Required bool                  `json:"required,omitempty"`
	Content  map[string]*MediaType `json:"content"`
}

type Response struct {
	Description string                `json:"description,omitempty"`
	Content     map[string]*MediaType `json:"content,omitempty"`
	Ref         string                `json:"$ref,omitempty"`
}

type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

// Path is a required string path parameter.
func Path(name, description string) *Parameter {
	return &Parameter{Name: name, In: "path", Required: true, Description: description, Schema: &Schema{Type: "string"}}
}

// Query is an optional query parameter of the given JSON type.
func Query(name, typ, description string) *Parameter {
	return &Parameter{Name: name, In: "query", Description: description, Schema: &Schema{Type: typ}}
}

// Body is a required request body accepting each media type with the named
// component schema.
func Body(schemas map[string]string) *RequestBody {
	content := make(map[string]*MediaType, len(schemas))
	for media, name := range schemas {
		content[media] = &MediaType{Schema: Ref(name)}
	}
	return &RequestBody{Required: true, Content: content}
}

// JSON is a response carrying a JSON body.
func JSON(description string, schema *Schema) *Response {
	return &Response{
		Description: description,
		Content:     map[string]*MediaType{mediaJSON: {Schema: schema}},
	}
}

// Use references a named component response.
func Use(name string) *Response {
	return &Response{Ref: "#/components/responses/" + name}
}

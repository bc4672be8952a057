package openapi

import "maps"

// Components holds reusable schemas and responses.
type Components struct {
	Schemas   map[string]*Schema   `json:"schemas,omitempty"`
	Responses map[string]*Response `json:"responses,omitempty"`
}

// NewComponents creates Components with the {"error": "..."} body and the
// plain error responses every handler can return.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": Object([]string{"error"}, map[string]*Schema{
				"error": {Type: "string", Example: "Unauthorized"},
			}),
		},
		Responses: map[string]*Response{
			"BadRequest":   JSON("Invalid request", Ref("Error")),
			"Unauthorized": JSON("Missing or invalid session", Ref("Error")),
			"NotFound":     JSON("Resource not found", Ref("Error")),
		},
	}
}

// AddSchemas merges the given schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges the given responses into the component responses.
func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}

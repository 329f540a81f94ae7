package schema

import (
	_ "embed"
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"
)

type Schema struct {
	schema *gojsonschema.Schema
}

// Validate validates an already decoded JSON value against the schema.
func (s *Schema) Validate(data any) (*gojsonschema.Result, error) {
	return s.schema.Validate(gojsonschema.NewGoLoader(data))
}

//go:embed echo-request.json
var echoRequest json.RawMessage
var echoRequestLoader = gojsonschema.NewBytesLoader(echoRequest)

func NewEchoRequestSchema() (*Schema, error) {
	echoSchema, err := gojsonschema.NewSchema(echoRequestLoader)
	if err != nil {
		return nil, err
	}

	return &Schema{schema: echoSchema}, nil
}

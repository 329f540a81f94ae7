package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/lambda-feedback/hello-api/api/schema"
	"github.com/lambda-feedback/hello-api/util"
)

var (
	ErrMalformedBody = errors.New("malformed JSON body")
	ErrNotAnObject   = errors.New("body is not a JSON object")
)

var echoSchema = util.Must(schema.NewEchoRequestSchema())

// DecodeEchoBody parses an echo request body into a generic value tree.
// Numbers are kept as json.Number so that re-encoding reproduces them
// exactly.
func DecodeEchoBody(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	// exactly one JSON value is allowed
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrMalformedBody)
	}

	res, err := echoSchema.Validate(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	if !res.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrNotAnObject, describeErrors(res.Errors()))
	}

	// the schema only admits objects
	object, _ := value.(map[string]any)

	return object, nil
}

// describeErrors joins the schema violations into a single message.
func describeErrors(errs []gojsonschema.ResultError) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.String())
	}

	return strings.Join(msgs, "; ")
}

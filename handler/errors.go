package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/lambda-feedback/hello-api/api"
)

var ErrUnsupportedMediaType = errors.New("unsupported media type")

var wellKnownErrors = map[error]int{
	api.ErrMalformedBody:    http.StatusBadRequest,
	api.ErrNotAnObject:      http.StatusBadRequest,
	ErrUnsupportedMediaType: http.StatusUnsupportedMediaType,
}

// ErrorResponse represents error response data.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// getErrorStatusCode returns the status code for the given error.
func getErrorStatusCode(err error) int {
	for known, status := range wellKnownErrors {
		if errors.Is(err, known) {
			return status
		}
	}

	return http.StatusInternalServerError
}

// newErrorBody creates the json body of an error response.
func newErrorBody(err error) []byte {
	responseErr := ErrorResponse{
		Message: http.StatusText(getErrorStatusCode(err)),
		Error:   err.Error(),
	}

	body, err := json.Marshal(struct {
		Error ErrorResponse `json:"error"`
	}{
		Error: responseErr,
	})
	if err != nil {
		return []byte(`{"error":{"message":"Internal Server Error"}}`)
	}

	return body
}

// checkContentType accepts application/json and application/*+json
// request bodies, with or without parameters such as charset.
func checkContentType(r *http.Request) error {
	contentType := r.Header.Get("Content-Type")

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedMediaType, contentType)
	}

	if mediaType == "application/json" {
		return nil
	}

	if strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json") {
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnsupportedMediaType, contentType)
}

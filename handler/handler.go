package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/hello-api/api"
)

type ApiHandlerParams struct {
	fx.In

	Endpoints *api.Endpoints
	Log       *zap.Logger
}

func NewApiHandler(params ApiHandlerParams) *ApiHandler {
	return &ApiHandler{
		endpoints: params.Endpoints,
		log:       params.Log,
	}
}

// ApiHandler exposes the endpoint set over http.
type ApiHandler struct {
	endpoints *api.Endpoints
	log       *zap.Logger
}

func (h *ApiHandler) Hello(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	h.writeResponse(w, log, h.endpoints.Hello())
}

func (h *ApiHandler) Root(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	h.writeResponse(w, log, h.endpoints.Root())
}

func (h *ApiHandler) Status(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	h.writeResponse(w, log, h.endpoints.Status())
}

// Greet reads the name path value. The empty-name route has no wildcard,
// so PathValue yields "" there.
func (h *ApiHandler) Greet(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	name := r.PathValue("name")

	h.writeResponse(w, log, h.endpoints.Greet(name))
}

func (h *ApiHandler) Echo(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	if err := checkContentType(r); err != nil {
		log.Debug("unsupported content type", zap.Error(err))
		h.writeError(w, log, err)
		return
	}

	// Read the body
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("failed to read body", zap.Error(err))
		h.writeError(w, log, fmt.Errorf("%w: %v", api.ErrMalformedBody, err))
		return
	}

	payload, err := api.DecodeEchoBody(body)
	if err != nil {
		log.Debug("invalid body", zap.Error(err))
		h.writeError(w, log, err)
		return
	}

	h.writeResponse(w, log, h.endpoints.Echo(payload))
}

func (h *ApiHandler) requestLogger(r *http.Request) *zap.Logger {
	log := h.log.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	log.Debug("handling request")

	return log
}

func (h *ApiHandler) writeResponse(w http.ResponseWriter, log *zap.Logger, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		log.Error("failed to encode response", zap.Error(err))
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	writeJSON(w, log, http.StatusOK, body)
}

func (h *ApiHandler) writeError(w http.ResponseWriter, log *zap.Logger, err error) {
	writeJSON(w, log, getErrorStatusCode(err), newErrorBody(err))
}

func writeJSON(w http.ResponseWriter, log *zap.Logger, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")

	// Write response headers and status code
	w.WriteHeader(status)

	// Write response body
	if _, err := w.Write(body); err != nil {
		log.Debug("failed to write response", zap.Error(err))
	}
}

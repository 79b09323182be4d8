package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
)

type (
	HandlerFunc func(w ResponseWriter, r *http.Request) (err error)

	Handler interface {
		Method() string
		Path() string
		Handle(w ResponseWriter, r *http.Request) (err error)
	}

	ResponseWriter interface {
		SetHeader(key, value string) ResponseWriter
		SetStatusCode(httpCode int) ResponseWriter
		SetJSONBody(data any) ResponseWriter
	}
)

type responseWriter struct {
	impl http.ResponseWriter

	body     any
	hasBody  bool
	httpCode int
}

func (w *responseWriter) SetHeader(key, value string) ResponseWriter {
	w.impl.Header().Set(key, value)
	return w
}

func (w *responseWriter) SetStatusCode(httpCode int) ResponseWriter {
	w.httpCode = httpCode
	return w
}

func (w *responseWriter) SetJSONBody(data any) ResponseWriter {
	w.body = data
	w.hasBody = true
	return w
}

type messageBody struct {
	Message string `json:"message"`
}

func (w *responseWriter) write(r *http.Request, err error) {
	httpCode := w.httpCode
	switch {
	case errors.Is(err, ErrParsingError):
		httpCode = http.StatusBadRequest
		w.body, w.hasBody = messageBody{Message: err.Error()}, true
	case err != nil && httpCode < http.StatusBadRequest:
		// an error the handler did not claim, nothing is exposed to the caller
		httpCode = http.StatusInternalServerError
		w.body, w.hasBody = nil, false
	case err != nil && !w.hasBody:
		w.body, w.hasBody = messageBody{Message: err.Error()}, true
	}

	meta := getHandlerMetadata(r.Context())
	meta.Code = httpCode
	meta.Error = err

	if !w.hasBody {
		w.impl.WriteHeader(httpCode)
		return
	}

	bodyEncoded, marshalErr := json.Marshal(w.body)
	if marshalErr != nil {
		meta.Code = http.StatusInternalServerError
		meta.Error = fmt.Errorf("encode response body: %w", marshalErr)
		w.impl.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.impl.Header().Set("Content-Type", "application/json")
	w.impl.WriteHeader(httpCode)
	_, _ = w.impl.Write(bodyEncoded)
}

func (w *responseWriter) writePanic(r *http.Request, panicMsg any) {
	meta := getHandlerMetadata(r.Context())
	meta.Code = http.StatusInternalServerError
	meta.Panic = &Panic{
		Message:    fmt.Sprintf("%v", panicMsg),
		Stacktrace: debug.Stack(),
	}

	w.impl.WriteHeader(http.StatusInternalServerError)
}

// NewHTTPHandler adapts a Handler to a standard http.Handler, useful for
// mounting outside the Server or exercising handlers in isolation.
func NewHTTPHandler(handler Handler) http.Handler {
	return httpHandlerWrapper(handler.Handle)
}

func httpHandlerWrapper(handler HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respWriter := &responseWriter{
			impl:     w,
			httpCode: http.StatusOK,
		}

		defer func() {
			if msg := recover(); msg != nil {
				respWriter.writePanic(r, msg)
			}
		}()

		err := handler(respWriter, r)
		respWriter.write(r, err)
	}
}

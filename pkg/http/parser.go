package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	pkgstrings "github.com/upservice/user-profile-service/pkg/strings"
)

type DataExtractor[T any] func(*http.Request) (T, error)

var ErrParsingError = errors.New("parsing error")

// ParseRequest chains extraction steps: the first failed step short-circuits
// the following ones through lastErr.
func ParseRequest[T any](r *http.Request, extractor DataExtractor[T], lastErr error) (T, error) {
	if lastErr != nil {
		var result T
		return result, lastErr
	}

	return extractor(r)
}

func PathParameter[T any](param string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		paramValue, ok := mux.Vars(r)[param]
		if !ok {
			var result T
			return result, fmt.Errorf("%w: path parameter %s not found", ErrParsingError, param)
		}

		return parseTypedValueImpl[T](paramValue)
	}
}

func Header[T any](key string) DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		header := r.Header.Get(key)
		if header == "" {
			var result T
			return result, fmt.Errorf("%w: header with key %s not found", ErrParsingError, key)
		}

		return parseTypedValueImpl[T](header)
	}
}

func JSONBody[T any]() DataExtractor[T] {
	return func(r *http.Request) (T, error) {
		var result T
		err := json.NewDecoder(r.Body).Decode(&result)
		if err != nil {
			return result, fmt.Errorf("%w: decode json body: %w", ErrParsingError, err)
		}

		return result, nil
	}
}

func parseTypedValueImpl[T any](value string) (T, error) {
	v, err := pkgstrings.ParseTypedValue[T](value)
	if err != nil {
		return v, fmt.Errorf("%w: %w", ErrParsingError, err)
	}

	return v, nil
}

package strings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ParseTypedValue converts a raw string into one of the supported scalar types.
func ParseTypedValue[T any](value string) (T, error) {
	var v any
	var err error
	var blank T
	switch any(blank).(type) {
	case bool:
		v, err = strconv.ParseBool(value)
	case int:
		v, err = strconv.Atoi(value)
	case uint:
		var parsed uint64
		parsed, err = strconv.ParseUint(value, 10, 64)
		v = uint(parsed)
	case float64:
		v, err = strconv.ParseFloat(value, 64)
	case string:
		v, err = value, nil
	case time.Time:
		v, err = time.Parse(time.RFC3339Nano, value)
		if err != nil {
			v, err = time.Parse(time.RFC3339, value)
		}
	case time.Duration:
		v, err = time.ParseDuration(value)
	case uuid.UUID:
		v, err = uuid.Parse(value)
	default:
		return blank, fmt.Errorf("unsupported value type %T", blank)
	}

	if err != nil {
		return blank, fmt.Errorf("convert %q to type %T: %w", value, blank, err)
	}
	return v.(T), nil
}

package movies

import (
	"bytes"
	"fmt"
	"math"

	"github.com/goccy/go-json"
)

// Optional distinguishes a field that was absent from a JSON payload from
// one explicitly set to null.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns an Optional explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// UnmarshalJSON is only invoked for keys present in the payload.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		var zero T
		o.Value = zero
		return nil
	}
	o.Null = false
	if p, ok := any(&o.Value).(*int); ok {
		return unmarshalInt(data, p)
	}
	return json.Unmarshal(data, &o.Value)
}

// unmarshalInt accepts JSON integers and whole-valued numbers such as 1994.0.
func unmarshalInt(data []byte, dst *int) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("expected an integer, got %s", bytes.TrimSpace(data))
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return fmt.Errorf("expected an integer, got %s", bytes.TrimSpace(data))
	}
	*dst = int(f)
	return nil
}

// arg returns the value to bind as a query parameter: nil for null.
func (o Optional[T]) arg() any {
	if o.Null {
		return nil
	}
	return o.Value
}

package spy

import (
	"fmt"
	"reflect"

	"github.com/stretchr/testify/assert"
)

// Pair is a single key/value entry for the ordered and set-like input
// shapes of IsSubsetOf. Values are expected to be primitive scalars.
type Pair struct {
	Key   string
	Value any
}

// IsSubsetOf reports whether every key/value pair in subset is also
// present with an equal value in superset. An empty subset is vacuously
// true for any superset.
//
// Each argument may be a string-keyed map (any value type), a slice or
// array of Pair, or a set of pairs (map[Pair]struct{} or map[Pair]bool).
// Both are converted to plain key/value mappings first; in the ordered
// Pair form a duplicate key keeps its last occurrence.
func IsSubsetOf(superset, subset any) (bool, error) {
	sup, err := pairsToMap(superset)
	if err != nil {
		return false, fmt.Errorf("superset: %w", err)
	}
	sub, err := pairsToMap(subset)
	if err != nil {
		return false, fmt.Errorf("subset: %w", err)
	}

	for k, v := range sub {
		have, ok := sup[k]
		if !ok || !assert.ObjectsAreEqual(have, v) {
			return false, nil
		}
	}
	return true, nil
}

var pairType = reflect.TypeOf(Pair{})

// pairsToMap converts any accepted collection shape to a key/value map.
func pairsToMap(v any) (map[string]any, error) {
	if v == nil {
		return nil, fmt.Errorf("cannot convert nil to a key/value mapping")
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		switch {
		case kt.Kind() == reflect.String:
			out := make(map[string]any, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				out[iter.Key().String()] = iter.Value().Interface()
			}
			return out, nil
		case kt == pairType:
			// Set-of-pairs form: the keys carry the data.
			out := make(map[string]any, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				p := iter.Key().Interface().(Pair)
				out[p.Key] = p.Value
			}
			return out, nil
		default:
			return nil, fmt.Errorf("cannot convert map with %s keys to a key/value mapping", kt)
		}
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem() != pairType {
			return nil, fmt.Errorf("cannot convert %s to a key/value mapping", rv.Type())
		}
		// Later occurrences overwrite earlier ones.
		out := make(map[string]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			p := rv.Index(i).Interface().(Pair)
			out[p.Key] = p.Value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a key/value mapping", v)
	}
}

// Package yamljson imports YAML documents as jsontree Value trees, so YAML
// input can flow through the same value model and serializer as JSON.
package yamljson

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	jsontree "github.com/akthrms/jsontree"
	"gopkg.in/yaml.v3"
)

// Import converts the first YAML document in data into a Value tree.
func Import(data []byte) (jsontree.Value, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	return toValue(node)
}

// ImportAll converts every document of a multi-document YAML stream.
func ImportAll(data []byte) ([]jsontree.Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []jsontree.Value
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		v, err := toValue(node)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

// toValue maps YAML-decoded values (which may contain map[any]any) onto the
// closed Value variants recursively.
func toValue(v any) (jsontree.Value, error) {
	switch t := v.(type) {
	case nil:
		return jsontree.Null{}, nil
	case bool:
		return jsontree.Bool(t), nil
	case string:
		return jsontree.String(t), nil
	case int:
		return jsontree.Number(float64(t)), nil
	case int64:
		return jsontree.Number(float64(t)), nil
	case uint64:
		return jsontree.Number(float64(t)), nil
	case float64:
		return jsontree.Number(t), nil
	case []any:
		arr := make(jsontree.Array, 0, len(t))
		for _, el := range t {
			cv, err := toValue(el)
			if err != nil {
				return nil, err
			}
			arr = append(arr, cv)
		}
		return arr, nil
	case map[string]any:
		obj := make(jsontree.Object, len(t))
		for k, el := range t {
			cv, err := toValue(el)
			if err != nil {
				return nil, err
			}
			obj[k] = cv
		}
		return obj, nil
	case map[any]any:
		obj := make(jsontree.Object, len(t))
		for k, el := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("yamljson: non-string key %v", k)
			}
			cv, err := toValue(el)
			if err != nil {
				return nil, err
			}
			obj[ks] = cv
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("yamljson: unsupported YAML value of type %T", t)
	}
}

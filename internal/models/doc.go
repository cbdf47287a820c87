// Package models defines the stored entity shapes. Each entity carries
// explicit Document/FromDocument mapping so validation (internal/schema) and
// persistence stay decoupled while both derive from the same field lists.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

func docString(doc map[string]interface{}, key string) string {
	if s, ok := doc[key].(string); ok {
		return s
	}
	return ""
}

func docBool(doc map[string]interface{}, key string, def bool) bool {
	if b, ok := doc[key].(bool); ok {
		return b
	}
	return def
}

func docFloat(doc map[string]interface{}, key string) float64 {
	switch n := doc[key].(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

// docStrings tolerates the three slice shapes we see in practice: typed
// slices from our own code, []interface{} from JSON, primitive.A from the
// mongo driver.
func docStrings(doc map[string]interface{}, key string) []string {
	switch l := doc[key].(type) {
	case []string:
		return l
	case []interface{}:
		return stringify(l)
	case primitive.A:
		return stringify(l)
	}
	return []string{}
}

func stringify(l []interface{}) []string {
	out := make([]string, 0, len(l))
	for _, e := range l {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

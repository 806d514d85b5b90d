package adapter

import "encoding/json"

// canonicalizeIDs rewrites "_id" keys to "id" in every object of the payload,
// recursively, so the rest of the client only ever sees the canonical field
// name. Endpoints disagree on which of the two they return; normalizing once
// here keeps slices and services free of the branch. When both keys are
// present the existing "id" wins and "_id" is dropped.
//
// Payloads that fail to decode are returned untouched; the caller's own
// decode will produce the real error.
func canonicalizeIDs(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return raw
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return raw
	}

	normalized, err := json.Marshal(canonValue(v))
	if err != nil {
		return raw
	}

	return normalized
}

func canonValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		if alt, ok := val["_id"]; ok {
			if _, already := val["id"]; !already {
				val["id"] = alt
			}
			delete(val, "_id")
		}
		for k, inner := range val {
			val[k] = canonValue(inner)
		}
		return val
	case []any:
		for i, inner := range val {
			val[i] = canonValue(inner)
		}
		return val
	default:
		return v
	}
}

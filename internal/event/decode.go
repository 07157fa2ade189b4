package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns payload as T. In-process publishers pass the struct itself;
// payloads that crossed a JSON boundary arrive as maps and are re-decoded.
func DecodePayload[T any](payload any) (T, error) {
	var out T
	switch p := payload.(type) {
	case T:
		return p, nil
	case *T:
		if p != nil {
			return *p, nil
		}
		return out, fmt.Errorf("nil %T payload", p)
	case json.RawMessage:
		return out, json.Unmarshal(p, &out)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("re-encode payload: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode %T payload: %w", out, err)
	}
	return out, nil
}

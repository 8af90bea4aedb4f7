package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Result holds a webhook response payload exactly as it was received.
// A payload that is a single JSON string is the text kind; any other
// valid JSON value is the structured kind.
type Result struct {
	raw    json.RawMessage
	text   string
	isText bool
}

// ParseResult interprets a response body as a result payload.
// The body must be valid JSON; no schema is enforced beyond that.
func ParseResult(body []byte) (Result, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Result{}, fmt.Errorf("response body is empty")
	}
	if !json.Valid(trimmed) {
		return Result{}, fmt.Errorf("response body is not valid JSON")
	}

	raw := make(json.RawMessage, len(trimmed))
	copy(raw, trimmed)

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return Result{}, fmt.Errorf("failed to decode string payload: %w", err)
		}
		return Result{raw: raw, text: s, isText: true}, nil
	}
	return Result{raw: raw}, nil
}

// TextResult builds a text-kind result directly from a string.
func TextResult(s string) Result {
	raw, _ := json.Marshal(s)
	return Result{raw: raw, text: s, isText: true}
}

// IsText reports whether the payload was a plain string.
func (r Result) IsText() bool {
	return r.isText
}

// IsZero reports whether the result holds no payload at all.
func (r Result) IsZero() bool {
	return len(r.raw) == 0
}

// Raw returns the payload bytes as received from the webhook.
func (r Result) Raw() []byte {
	out := make([]byte, len(r.raw))
	copy(out, r.raw)
	return out
}

// Render returns the payload for display: the literal string value for
// text payloads, indented JSON for everything else. Key order is
// preserved because indentation works on the original bytes.
func (r Result) Render() string {
	if r.isText {
		return r.text
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, r.raw, "", "  "); err != nil {
		return string(r.raw)
	}
	return buf.String()
}

// MarshalJSON emits the payload verbatim.
func (r Result) MarshalJSON() ([]byte, error) {
	if len(r.raw) == 0 {
		return []byte("null"), nil
	}
	return r.raw, nil
}

// UnmarshalJSON restores a result from its verbatim payload bytes.
func (r *Result) UnmarshalJSON(data []byte) error {
	parsed, err := ParseResult(data)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

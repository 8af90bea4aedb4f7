package webhook

import (
	"encoding/json"
	"testing"
)

// TestParseResult tests payload classification across JSON kinds
func TestParseResult(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		wantText bool
		rendered string
	}{
		{
			name:     "object payload",
			body:     `{"score": 42}`,
			rendered: "{\n  \"score\": 42\n}",
		},
		{
			name:     "array payload",
			body:     `[1, 2, 3]`,
			rendered: "[\n  1,\n  2,\n  3\n]",
		},
		{
			name:     "string payload",
			body:     `"ok"`,
			wantText: true,
			rendered: "ok",
		},
		{
			name:     "string payload with padding",
			body:     "  \"ok\"\n",
			wantText: true,
			rendered: "ok",
		},
		{
			name:     "number payload",
			body:     `3.14`,
			rendered: "3.14",
		},
		{
			name:     "boolean payload",
			body:     `true`,
			rendered: "true",
		},
		{
			name:     "null payload",
			body:     `null`,
			rendered: "null",
		},
		{
			name:    "plain text is not JSON",
			body:    `analysis complete`,
			wantErr: true,
		},
		{
			name:    "truncated object",
			body:    `{"score":`,
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    ``,
			wantErr: true,
		},
		{
			name:    "whitespace only",
			body:    "  \n\t",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseResult([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected an error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseResult() unexpected error: %v", err)
			}
			if result.IsText() != tt.wantText {
				t.Errorf("IsText() = %v, expected %v", result.IsText(), tt.wantText)
			}
			if got := result.Render(); got != tt.rendered {
				t.Errorf("Render() = %q, expected %q", got, tt.rendered)
			}
		})
	}
}

// TestRenderPreservesKeyOrder tests that structured payloads keep the webhook's key order
func TestRenderPreservesKeyOrder(t *testing.T) {
	result, err := ParseResult([]byte(`{"zebra": 1, "apple": 2, "mango": 3}`))
	if err != nil {
		t.Fatalf("ParseResult() unexpected error: %v", err)
	}

	want := "{\n  \"zebra\": 1,\n  \"apple\": 2,\n  \"mango\": 3\n}"
	if got := result.Render(); got != want {
		t.Errorf("Render() reordered keys:\ngot:  %s\nwant: %s", got, want)
	}
}

// TestStringWithJSONContent tests that a string payload is shown literally, never re-parsed
func TestStringWithJSONContent(t *testing.T) {
	result, err := ParseResult([]byte(`"{\"looks\": \"like json\"}"`))
	if err != nil {
		t.Fatalf("ParseResult() unexpected error: %v", err)
	}

	if !result.IsText() {
		t.Fatal("A JSON string should be the text kind even when it contains JSON")
	}
	if got := result.Render(); got != `{"looks": "like json"}` {
		t.Errorf("Render() = %q, expected the literal string value", got)
	}
}

// TestMarshalJSONVerbatim tests that marshalling emits the original bytes
func TestMarshalJSONVerbatim(t *testing.T) {
	body := `{"b":1,"a":{"nested":[true,null]}}`
	result, err := ParseResult([]byte(body))
	if err != nil {
		t.Fatalf("ParseResult() unexpected error: %v", err)
	}

	out, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if string(out) != body {
		t.Errorf("Marshal() = %s, expected verbatim %s", out, body)
	}
}

// TestUnmarshalJSONRoundTrip tests restoring a result from its payload bytes
func TestUnmarshalJSONRoundTrip(t *testing.T) {
	var result Result
	if err := json.Unmarshal([]byte(`"plain answer"`), &result); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if !result.IsText() {
		t.Error("Unmarshalled string payload should be the text kind")
	}
	if result.Render() != "plain answer" {
		t.Errorf("Render() = %q, expected %q", result.Render(), "plain answer")
	}
}

// TestTextResult tests the direct text constructor
func TestTextResult(t *testing.T) {
	result := TextResult("hello")
	if !result.IsText() {
		t.Error("TextResult should produce the text kind")
	}
	if result.Render() != "hello" {
		t.Errorf("Render() = %q, expected %q", result.Render(), "hello")
	}
	if string(result.Raw()) != `"hello"` {
		t.Errorf("Raw() = %s, expected quoted JSON string", result.Raw())
	}
}

// TestZeroResult tests the zero value behaves sanely
func TestZeroResult(t *testing.T) {
	var result Result
	if !result.IsZero() {
		t.Error("Zero result should report IsZero")
	}
	out, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if string(out) != "null" {
		t.Errorf("Zero result should marshal as null, got %s", out)
	}
}

package format

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		v      any
		pretty bool
		want   string
	}{
		{"compact envelope", Envelope{Data: map[string]int{"n": 1}}, false, `{"data":{"n":1}}` + "\n"},
		{"meta kept when set", Envelope{Data: 1, Meta: []string{"x"}}, false, `{"data":1,"meta":["x"]}` + "\n"},
		{"pretty", Envelope{Data: true}, true, "{\n  \"data\": true\n}\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var b bytes.Buffer
			if err := WriteJSON(&b, tt.v, tt.pretty); err != nil {
				t.Fatalf("WriteJSON: %v", err)
			}
			if got := b.String(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteJSON_UnsupportedValue(t *testing.T) {
	t.Parallel()
	var b bytes.Buffer
	err := WriteJSON(&b, Envelope{Data: make(chan int)}, false)
	if err == nil || !strings.Contains(err.Error(), "unsupported type") {
		t.Fatalf("expected marshal error, got %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("nothing should be written on error, got %q", b.String())
	}
}

package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// Envelope is the shape of every command's stdout.
type Envelope struct {
	Data any `json:"data"`
	Meta any `json:"meta,omitempty"`
}

// WriteJSON writes strict JSON output for CLI commands, one document per
// line unless pretty is set.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

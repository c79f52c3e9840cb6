package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/draftmsg/draftmsg/internal/classify"
)

// JSONWriter outputs the analysis and suggestion as an indented JSON
// document, for scripts and editor integrations.
type JSONWriter struct{}

type jsonReport struct {
	Analysis  classify.Analysis `json:"analysis"`
	Message   classify.Message  `json:"message"`
	Suggested string            `json:"suggested"`
}

func (j *JSONWriter) Write(w io.Writer, a classify.Analysis, msg classify.Message) error {
	data, err := json.MarshalIndent(jsonReport{Analysis: a, Message: msg, Suggested: msg.String()}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

package output

import (
	"fmt"
	"io"
	"os"

	"github.com/draftmsg/draftmsg/internal/classify"
)

// Writer renders an analysis plus its suggested message in one format.
type Writer interface {
	Write(w io.Writer, a classify.Analysis, msg classify.Message) error
}

// GetWriter returns a writer for the given format string.
func GetWriter(format string, noColor bool) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{NoColor: noColor}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// Write renders to outPath, or stdout when outPath is empty.
func Write(a classify.Analysis, msg classify.Message, format, outPath string, noColor bool) error {
	writer, err := GetWriter(format, noColor)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, a, msg)
}

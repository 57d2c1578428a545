package commands

import (
	"fmt"
	"io"

	"github.com/ruminaider/panseq-form/internal/form"
	"go.yaml.in/yaml/v3"
)

// Output formats for WriteSubmission.
const (
	FormatForm = "form"
	FormatYAML = "yaml"
)

// WriteSubmission writes sub to w as an URL-encoded body or as YAML.
func WriteSubmission(w io.Writer, sub form.Submission, format string) error {
	switch format {
	case "", FormatForm:
		_, err := fmt.Fprintln(w, sub.Encode())
		return err
	case FormatYAML:
		data, err := yaml.Marshal(sub)
		if err != nil {
			return fmt.Errorf("marshaling submission: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, FormatForm, FormatYAML)
	}
}

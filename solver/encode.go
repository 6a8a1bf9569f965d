package solver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Encode writes r to w. The text format is just the words, one per line;
// yaml and json carry the paths, scores and summary too.
func Encode(w io.Writer, r *Result, format string) error {
	switch format {
	case FormatText, "":
		for _, f := range r.Found {
			if _, err := fmt.Fprintln(w, f.Word); err != nil {
				return err
			}
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

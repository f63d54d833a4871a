package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vk/reabank/internal/registry"
	"gopkg.in/yaml.v3"
)

// writeEntries prints LSB/articulation pairs in the requested format.
func writeEntries(w io.Writer, format string, entries []registry.Entry) error {
	switch format {
	case ShowFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case ShowFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%d\t%s\n", e.LSB, e.Articulation); err != nil {
				return err
			}
		}
		return nil
	}
}

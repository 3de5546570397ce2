package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/idelchi/dutree/internal/dirstat"
)

// PrintJSON outputs the report tree in JSON format.
func PrintJSON(entry dirstat.Entry, writer io.Writer) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTree outputs the report as an indented tree with an unnamed root.
func PrintTree(renderer dirstat.Renderer, root *dirstat.Node, writer io.Writer) error {
	if err := renderer.Render(writer, "", root); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}

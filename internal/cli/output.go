package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/dhesend-org/dhesend-go"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	fieldColor = color.New(color.FgYellow)
)

type printer struct {
	w      io.Writer
	format string
}

// print writes v as indented JSON or as YAML. YAML goes through a JSON round
// trip so field names match the API.
func (p *printer) print(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	if p.format != "yaml" {
		_, err = fmt.Fprintln(p.w, string(data))
		return err
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}

// printError writes err, listing field errors one per line.
func printError(w io.Writer, err error) {
	var apiErr *dhesend.Error
	if errors.As(err, &apiErr) && apiErr.Payload.IsFields() {
		errorColor.Fprintln(w, "Error: request rejected")
		for _, f := range apiErr.Payload.Fields {
			fmt.Fprintf(w, "  %s: %s\n", fieldColor.Sprint(f.Field), f.Message)
		}
		return
	}
	errorColor.Fprintf(w, "Error: %v\n", err)
}

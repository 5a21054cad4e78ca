// Package printer implements the §6.1 external interface: writing a frame
// or view as delimited text, one row per line, with an optional header.
package printer

import (
	"io"
	"strings"

	"github.com/leengari/tabframe/internal/ref"
	"github.com/leengari/tabframe/internal/value"
)

// Config controls delimiter and header behavior. An empty FieldSep or
// RowSep falls back to §6.1's "|" and "\n"; WithHeader defaults to false.
// Print is used as given: its zero value renders Null as an empty string
// and has no Timestamp formatter, so DefaultConfig is the way to get
// §6.1's value rendering.
type Config struct {
	FieldSep   string
	RowSep     string
	WithHeader bool
	Print      value.PrintConfig
}

// DefaultConfig returns §6.1's default rendering configuration.
func DefaultConfig() Config {
	return Config{FieldSep: "|", RowSep: "\n", WithHeader: false, Print: value.DefaultPrintConfig()}
}

// Print writes f (a frame or view) to w per cfg (§6.1). Header, when
// enabled, uses column names in schema order.
func Print(w io.Writer, f ref.Frame, cfg Config) error {
	if cfg.FieldSep == "" {
		cfg.FieldSep = "|"
	}
	if cfg.RowSep == "" {
		cfg.RowSep = "\n"
	}
	var sb strings.Builder
	rows, cols := f.Rows(), f.Cols()

	if cfg.WithHeader {
		names := make([]string, cols)
		for c := 0; c < cols; c++ {
			name, err := f.ColName(c)
			if err != nil {
				return err
			}
			names[c] = name
		}
		sb.WriteString(strings.Join(names, cfg.FieldSep))
		sb.WriteString(cfg.RowSep)
	}

	for r := 0; r < rows; r++ {
		fields := make([]string, cols)
		for c := 0; c < cols; c++ {
			v, err := f.Cell(r, c)
			if err != nil {
				return err
			}
			fields[c] = value.Render(v, cfg.Print)
		}
		sb.WriteString(strings.Join(fields, cfg.FieldSep))
		sb.WriteString(cfg.RowSep)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Render is a convenience wrapper returning the printed text as a string.
func Render(f ref.Frame, cfg Config) (string, error) {
	var sb strings.Builder
	if err := Print(&sb, f, cfg); err != nil {
		return "", err
	}
	return sb.String(), nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// OutputMode controls how results are printed.
type OutputMode int

const (
	OutputHuman OutputMode = iota
	OutputJSON
	OutputQuiet
)

// Printer handles structured output for every command. Results go to Writer;
// progress and errors go to Logger, which writes to stderr.
type Printer struct {
	Mode   OutputMode
	Writer io.Writer
	Logger zerolog.Logger
}

// NewPrinter creates a Printer from the global flags.
func NewPrinter(out, errOut io.Writer, jsonFlag, quietFlag bool) *Printer {
	mode := OutputHuman
	if jsonFlag {
		mode = OutputJSON
	} else if quietFlag {
		mode = OutputQuiet
	}
	var logger zerolog.Logger
	if mode == OutputJSON {
		logger = zerolog.New(errOut).With().Timestamp().Logger()
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: errOut, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	}
	return &Printer{
		Mode:   mode,
		Writer: out,
		Logger: logger,
	}
}

// JSON writes v as indented JSON to the writer.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Human writes a formatted human-readable line.
func (p *Printer) Human(format string, args ...any) {
	if p.Mode == OutputQuiet {
		return
	}
	fmt.Fprintf(p.Writer, format+"\n", args...)
}

// Value writes a requested value on its own line, even in quiet mode.
func (p *Printer) Value(s string) {
	fmt.Fprintln(p.Writer, s)
}

// Error logs an error via zerolog.
func (p *Printer) Error(err error, msg string) {
	p.Logger.Error().Err(err).Msg(msg)
}

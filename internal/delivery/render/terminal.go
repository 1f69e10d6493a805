package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/pkg/errors"
)

const (
	styleAuto = "auto"
	wordWrap  = 120
)

// Printer writes markdown to a terminal, styled by glamour unless raw.
type Printer struct {
	out   io.Writer
	raw   bool
	style string
}

// NewPrinter creates a printer. style is a glamour standard style name or
// "auto".
func NewPrinter(out io.Writer, style string, raw bool) *Printer {
	if strings.TrimSpace(style) == "" {
		style = styleAuto
	}

	return &Printer{out: out, raw: raw, style: style}
}

// Print renders markdown and writes it out.
func (p *Printer) Print(markdown string) error {
	if p.raw {
		_, err := fmt.Fprint(p.out, markdown)

		return errors.WithStack(err)
	}

	styleOpt := glamour.WithStandardStyle(p.style)
	if p.style == styleAuto {
		styleOpt = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wordWrap))
	if err != nil {
		return errors.Wrap(err, "create markdown renderer")
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return errors.Wrap(err, "render markdown")
	}

	_, err = fmt.Fprint(p.out, out)

	return errors.WithStack(err)
}

// Printf formats a markdown fragment and prints it.
func (p *Printer) Printf(format string, args ...any) error {
	return p.Print(fmt.Sprintf(format, args...))
}

// Package printer writes styled, human readable output for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hay-kot/pathux/pkgs/styles"
)

type Printer struct {
	writer io.Writer
	base   styles.RenderFunc
	light  styles.RenderFunc
}

func New(w io.Writer) *Printer {
	return &Printer{
		writer: w,
		base:   styles.Bold,
		light:  styles.Subtle,
	}
}

// Ctx returns a copy of the printer that writes to the writer stored in ctx,
// if there is one.
func (p *Printer) Ctx(ctx context.Context) *Printer {
	cp := *p
	if w, ok := GetWriter(ctx); ok {
		cp.writer = w
	}
	return &cp
}

func (p *Printer) WithBase(style styles.RenderFunc) *Printer {
	cp := *p
	cp.base = style
	return &cp
}

func (p *Printer) WithLight(style styles.RenderFunc) *Printer {
	cp := *p
	cp.light = style
	return &cp
}

func (p *Printer) write(s string) {
	_, _ = io.WriteString(p.writer, s)
}

func (p *Printer) FatalError(err error) {
	p.write("\n" + styles.ErrorBox("Error", err.Error()) + "\n")
}

func (p *Printer) Title(title string) {
	p.write(p.base(title) + "\n")
}

// Line writes s followed by a newline with no styling applied.
func (p *Printer) Line(s string) {
	p.write(s + "\n")
}

func (p *Printer) LineBreak() {
	p.write("\n")
}

func (p *Printer) List(title string, items []string) {
	if title != "" {
		p.Title(title)
	}
	for _, item := range items {
		p.write(p.light(styles.Dot) + " " + item + "\n")
	}
}

type KeyValue struct {
	Key   string
	Value string
}

// KeyValues prints aligned key/value pairs under an optional title.
func (p *Printer) KeyValues(title string, kvs []KeyValue) {
	if title != "" {
		p.Title(title)
	}

	width := 0
	for _, kv := range kvs {
		width = max(width, len(kv.Key))
	}

	for _, kv := range kvs {
		pad := strings.Repeat(" ", width-len(kv.Key))
		p.write(fmt.Sprintf("%s%s %s\n", p.light(kv.Key+":"), pad, kv.Value))
	}
}

// Status prints a check or cross mark followed by msg.
func (p *Printer) Status(ok bool, msg string) {
	mark := styles.Error(styles.Cross)
	if ok {
		mark = styles.Success(styles.Check)
	}
	p.write(mark + " " + msg + "\n")
}

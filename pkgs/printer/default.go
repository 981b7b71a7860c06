package printer

import (
	"context"
	"os"

	"github.com/hay-kot/pathux/pkgs/styles"
)

var ConsolePrinter = New(os.Stdout)

func Ctx(ctx context.Context) *Printer {
	return ConsolePrinter.Ctx(ctx)
}

func WithBase(style styles.RenderFunc) *Printer {
	return ConsolePrinter.WithBase(style)
}

func WithLight(style styles.RenderFunc) *Printer {
	return ConsolePrinter.WithLight(style)
}

func FatalError(err error) {
	ConsolePrinter.FatalError(err)
}

func Title(title string) {
	ConsolePrinter.Title(title)
}

func List(title string, items []string) {
	ConsolePrinter.List(title, items)
}

func KeyValues(title string, kvs []KeyValue) {
	ConsolePrinter.KeyValues(title, kvs)
}

func Status(ok bool, msg string) {
	ConsolePrinter.Status(ok, msg)
}

func LineBreak() {
	ConsolePrinter.LineBreak()
}

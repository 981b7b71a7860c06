package printer

import (
	"bytes"
	"io"
	"sync"
)

// DeferredWriter buffers everything written to it until Flush is called, so
// a command's output is not interleaved with log lines written to stderr.
type DeferredWriter struct {
	mu     sync.Mutex
	buff   bytes.Buffer
	writer io.Writer
}

func NewDeferredWriter(w io.Writer) *DeferredWriter {
	return &DeferredWriter{
		writer: w,
	}
}

func (dw *DeferredWriter) Write(p []byte) (int, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	return dw.buff.Write(p)
}

func (dw *DeferredWriter) Flush() error {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	_, err := dw.buff.WriteTo(dw.writer)
	return err
}

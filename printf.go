package u8

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// defaultPrintfSize is the initial guess for the formatted output size.
const defaultPrintfSize = 512

// Printer formats text and routes it through the code point path before
// writing it: the formatted bytes are decoded to code points and encoded
// again for the underlying writer.
type Printer struct {
	w           io.Writer
	log         *zap.Logger
	initialSize int
}

// PrinterOption configures a Printer.
type PrinterOption func(*Printer)

// WithLogger sets the logger used for debug output. Defaults to Logger().
func WithLogger(l *zap.Logger) PrinterOption {
	return func(p *Printer) {
		p.log = l
	}
}

// WithInitialSize sets the size the formatted output is expected to fit.
// Larger output still prints; it is logged at debug level.
func WithInitialSize(n int) PrinterOption {
	return func(p *Printer) {
		if n > 0 {
			p.initialSize = n
		}
	}
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer, opts ...PrinterOption) *Printer {
	p := &Printer{
		w:           w,
		initialSize: defaultPrintfSize,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Printer) logger() *zap.Logger {
	if p.log != nil {
		return p.log
	}
	return Logger()
}

// Printf formats according to format and writes the result. It returns the
// number of characters written.
//
// A sequence cut off at the very end of the formatted text is not written,
// and neither are decoded values above MaxRune.
func (p *Printer) Printf(format string, args ...any) (int, error) {
	sc := getScratch()
	defer sc.release()

	text := fmt.Appendf(sc.formatted[:0], format, args...)
	sc.formatted = text
	if len(text) >= p.initialSize {
		p.logger().Debug("formatted output exceeded initial size",
			zap.Int("size", len(text)),
			zap.Int("initial", p.initialSize))
	}

	runes := sc.runeBuf(len(text) + 1)
	n := DecodeInto(runes, text)

	out := sc.byteBuf(n*UTFMax + 1)
	_, written := encodeRunes(out, runes[:n], false)
	if dropped := countOutOfRange(runes[:n]); dropped > 0 {
		p.logger().Debug("code points dropped from output",
			zap.Int("dropped", dropped),
			zap.Int("chars", n))
	}

	if _, err := p.w.Write(out[:written]); err != nil {
		return 0, fmt.Errorf("u8: printf: %w", err)
	}
	return n, nil
}

func countOutOfRange(runes []uint32) int {
	n := 0
	for _, cp := range runes {
		if cp > MaxRune {
			n++
		}
	}
	return n
}

var stdout = NewPrinter(os.Stdout)

// Printf is Printer.Printf on standard output.
func Printf(format string, args ...any) (int, error) {
	return stdout.Printf(format, args...)
}

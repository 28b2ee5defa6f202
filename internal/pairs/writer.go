package pairs

import (
	"bufio"
	"io"
	"strconv"
)

const (
	prologue = "{\"pairs\":[\n"
	epilogue = "]}\n"
)

// Writer streams a pairs document one line per record.
type Writer struct {
	w   *bufio.Writer
	buf []byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w), buf: make([]byte, 0, 128)}
}

func (w *Writer) Begin() error {
	_, err := w.w.WriteString(prologue)
	return err
}

// WriteRecord writes p, followed by a separator unless it is the last record.
func (w *Writer) WriteRecord(p Pair, last bool) error {
	b := w.buf[:0]
	b = append(b, `{"x0":`...)
	b = appendCoord(b, p.X0)
	b = append(b, `, "y0":`...)
	b = appendCoord(b, p.Y0)
	b = append(b, `, "x1":`...)
	b = appendCoord(b, p.X1)
	b = append(b, `, "y1":`...)
	b = appendCoord(b, p.Y1)
	b = append(b, '}')
	if !last {
		b = append(b, ',')
	}
	b = append(b, '\n')
	w.buf = b
	_, err := w.w.Write(b)
	return err
}

func (w *Writer) End() error {
	if _, err := w.w.WriteString(epilogue); err != nil {
		return err
	}
	return w.w.Flush()
}

func appendCoord(b []byte, v float64) []byte {
	return strconv.AppendFloat(b, v, 'f', Precision, 64)
}

// Generate writes a document of count pairs drawn from s.
// A non-positive count yields an empty, well-formed document.
// visit, when not nil, sees every pair as it reads back from the document.
func Generate(w io.Writer, count int, s Sampler, visit func(Pair) error) error {
	dw := NewWriter(w)
	if err := dw.Begin(); err != nil {
		return err
	}
	for remaining := count; remaining > 0; remaining-- {
		p := s.Next().Rounded()
		if err := dw.WriteRecord(p, remaining == 1); err != nil {
			return err
		}
		if visit != nil {
			if err := visit(p); err != nil {
				return err
			}
		}
	}
	return dw.End()
}

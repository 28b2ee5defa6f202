// Package answers reads and writes reference answer files: one little-endian
// float64 haversine per pair, followed by their average.
package answers

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/artemijrodionov/haversine/internal/haversine"
)

var (
	ErrEmpty     = errors.New("answers file is empty")
	ErrTruncated = errors.New("answers file is truncated")
)

const width = 8

type Writer struct {
	w   *bufio.Writer
	avg haversine.Average
	buf [width]byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) Add(d float64) error {
	w.avg.Add(d)
	return w.put(d)
}

// Finish appends the average and flushes.
func (w *Writer) Finish() error {
	if err := w.put(w.avg.Value()); err != nil {
		return err
	}
	return w.w.Flush()
}

func (w *Writer) put(v float64) error {
	binary.LittleEndian.PutUint64(w.buf[:], math.Float64bits(v))
	_, err := w.w.Write(w.buf[:])
	return err
}

type Answers struct {
	Values  []float64
	Average float64
}

func Read(r io.Reader) (Answers, error) {
	br := bufio.NewReader(r)
	var values []float64
	var buf [width]byte
	for {
		_, err := io.ReadFull(br, buf[:])
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			return Answers{}, fmt.Errorf("%w after %d values", ErrTruncated, len(values))
		}
		if err != nil {
			return Answers{}, fmt.Errorf("read answers: %w", err)
		}
		values = append(values, math.Float64frombits(binary.LittleEndian.Uint64(buf[:])))
	}

	if len(values) == 0 {
		return Answers{}, ErrEmpty
	}
	last := len(values) - 1
	return Answers{Values: values[:last], Average: values[last]}, nil
}

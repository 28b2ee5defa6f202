package pairs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var ErrMalformed = errors.New("malformed pairs document")

type record struct {
	X0 *float64 `json:"x0"`
	Y0 *float64 `json:"y0"`
	X1 *float64 `json:"x1"`
	Y1 *float64 `json:"y1"`
}

func (r record) pair() (Pair, error) {
	fields := []struct {
		name string
		v    *float64
	}{{"x0", r.X0}, {"y0", r.Y0}, {"x1", r.X1}, {"y1", r.Y1}}
	for _, f := range fields {
		if f.v == nil {
			return Pair{}, fmt.Errorf("missing field %s", f.name)
		}
	}
	return Pair{*r.X0, *r.Y0, *r.X1, *r.Y1}, nil
}

// Read decodes a pairs document record by record and returns how many pairs it saw.
func Read(r io.Reader, visit func(Pair) error) (int, error) {
	dec := json.NewDecoder(r)
	if err := expectDelim(dec, '{'); err != nil {
		return 0, err
	}

	n := 0
	found := false
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return n, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		key, ok := tok.(string)
		if !ok {
			return n, fmt.Errorf("%w: expected object key, got %v", ErrMalformed, tok)
		}
		if key != "pairs" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return n, fmt.Errorf("%w: field %q: %v", ErrMalformed, key, err)
			}
			continue
		}

		found = true
		if err := expectDelim(dec, '['); err != nil {
			return n, err
		}
		for dec.More() {
			var rec record
			if err := dec.Decode(&rec); err != nil {
				return n, fmt.Errorf("%w: pair %d: %v", ErrMalformed, n, err)
			}
			p, err := rec.pair()
			if err != nil {
				return n, fmt.Errorf("%w: pair %d: %v", ErrMalformed, n, err)
			}
			n++
			if visit != nil {
				if err := visit(p); err != nil {
					return n, err
				}
			}
		}
		if err := expectDelim(dec, ']'); err != nil {
			return n, err
		}
	}

	if err := expectDelim(dec, '}'); err != nil {
		return n, err
	}
	if !found {
		return n, fmt.Errorf("%w: no pairs field", ErrMalformed)
	}
	return n, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: expected %v: %v", ErrMalformed, want, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %v, got %v", ErrMalformed, want, tok)
	}
	return nil
}

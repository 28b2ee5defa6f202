package pairs

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

const (
	MinLongitude = -180.0
	MaxLongitude = 180.0
	MinLatitude  = -90.0
	MaxLatitude  = 90.0

	// Precision is the number of fractional digits every coordinate is written with.
	Precision = 6
)

var ErrInvalidSize = errors.New("invalid size argument")

// Pair is one record of the document: two lon/lat points.
type Pair struct {
	X0, Y0, X1, Y1 float64
}

func (p Pair) inRange() bool {
	return inLongitude(p.X0) && inLongitude(p.X1) && inLatitude(p.Y0) && inLatitude(p.Y1)
}

// Rounded returns the pair exactly as it reads back from the document.
func (p Pair) Rounded() Pair {
	return Pair{round(p.X0), round(p.Y0), round(p.X1), round(p.Y1)}
}

func inLongitude(v float64) bool { return v >= MinLongitude && v <= MaxLongitude }
func inLatitude(v float64) bool  { return v >= MinLatitude && v <= MaxLatitude }

func round(v float64) float64 {
	r, _ := strconv.ParseFloat(FormatCoord(v), 64)
	return r
}

// FormatCoord renders v with exactly Precision fractional digits.
// strconv rounds the exact binary value to nearest, ties to even.
func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', Precision, 64)
}

// ParseSize interprets the data set size argument.
func ParseSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidSize, s, err)
	}
	return n, nil
}

// NewRand returns a random source seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomSeed picks a seed from the runtime's auto-seeded source, so a
// run without an explicit seed is still reproducible once the seed is known.
func RandomSeed() uint64 {
	return rand.Uint64()
}

func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

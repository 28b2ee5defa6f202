package pairs

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

type Method string
type Methods []Method

const (
	Uniform Method = "uniform"
	Cluster Method = "cluster"
)

const (
	DefaultClusters = 64
	clusterSpread   = 10.0
)

var methods = Methods{Uniform, Cluster}

var errUnknownMethod = errors.New("can't find method")

func (ms Methods) String() string {
	result := make([]string, len(ms))
	for i, m := range ms {
		result[i] = string(m)
	}
	return strings.Join(result, ", ")
}

func AllMethods() Methods { return methods }

func (m Method) String() string {
	return string(m)
}

func (m *Method) Set(s string) error {
	for _, t := range methods {
		if t.String() == s {
			*m = t
			return nil
		}
	}
	return fmt.Errorf("%w %q (expected %s)", errUnknownMethod, s, methods)
}

func (m *Method) Type() string {
	return "method"
}

// Sampler produces one random pair per call.
type Sampler interface {
	Next() Pair
}

func NewSampler(method Method, r *rand.Rand, clusters int) (Sampler, error) {
	switch method {
	case Uniform, "":
		return &uniformSampler{r: r}, nil
	case Cluster:
		if clusters <= 0 {
			return nil, fmt.Errorf("cluster count must be positive, got %d", clusters)
		}
		return newClusterSampler(r, clusters), nil
	default:
		return nil, fmt.Errorf("%w %q", errUnknownMethod, method)
	}
}

type uniformSampler struct {
	r *rand.Rand
}

func (s *uniformSampler) Next() Pair {
	return Pair{
		X0: uniform(s.r, MinLongitude, MaxLongitude),
		Y0: uniform(s.r, MinLatitude, MaxLatitude),
		X1: uniform(s.r, MinLongitude, MaxLongitude),
		Y1: uniform(s.r, MinLatitude, MaxLatitude),
	}
}

type point struct {
	x, y float64
}

type clusterSampler struct {
	r       *rand.Rand
	centres []point
}

// Centres leave room for the spread so points never leave the valid range.
func newClusterSampler(r *rand.Rand, n int) *clusterSampler {
	centres := make([]point, n)
	for i := range centres {
		centres[i] = point{
			x: uniform(r, MinLongitude, MaxLongitude-clusterSpread),
			y: uniform(r, MinLatitude, MaxLatitude-clusterSpread),
		}
	}
	return &clusterSampler{r: r, centres: centres}
}

func (s *clusterSampler) point() point {
	c := s.centres[s.r.IntN(len(s.centres))]
	return point{c.x + s.r.Float64()*clusterSpread, c.y + s.r.Float64()*clusterSpread}
}

func (s *clusterSampler) Next() Pair {
	p0 := s.point()
	p1 := s.point()
	return Pair{X0: p0.x, Y0: p0.y, X1: p1.x, Y1: p1.y}
}

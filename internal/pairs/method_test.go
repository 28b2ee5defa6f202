package pairs

import (
	"errors"
	"testing"
)

func TestMethodSet(t *testing.T) {
	var m Method
	if err := m.Set("cluster"); err != nil || m != Cluster {
		t.Fatalf("Set(cluster) = %v, method %q", err, m)
	}
	if err := m.Set("spiral"); !errors.Is(err, errUnknownMethod) {
		t.Fatalf("Set(spiral) error = %v", err)
	}
	if m != Cluster {
		t.Errorf("failed Set changed the method to %q", m)
	}
	if got := AllMethods().String(); got != "uniform, cluster" {
		t.Errorf("AllMethods() = %q", got)
	}
}

func TestSamplersStayInRange(t *testing.T) {
	tests := []struct {
		method   Method
		clusters int
	}{
		{Uniform, 0},
		{Cluster, DefaultClusters},
		{Cluster, 1},
	}

	for _, test := range tests {
		t.Run(test.method.String(), func(t *testing.T) {
			s, err := NewSampler(test.method, NewRand(7), test.clusters)
			if err != nil {
				t.Fatalf("NewSampler: %v", err)
			}
			for i := 0; i < 20_000; i++ {
				if p := s.Next(); !p.inRange() || !p.Rounded().inRange() {
					t.Fatalf("draw %d out of range: %+v", i, p)
				}
			}
		})
	}
}

func TestClusterSamplerStaysNearCentres(t *testing.T) {
	s, err := NewSampler(Cluster, NewRand(3), 1)
	if err != nil {
		t.Fatal(err)
	}
	c := s.(*clusterSampler).centres[0]
	for i := 0; i < 1000; i++ {
		p := s.Next()
		if p.X0 < c.x || p.X0 >= c.x+clusterSpread || p.Y1 < c.y || p.Y1 >= c.y+clusterSpread {
			t.Fatalf("pair %+v escaped cluster %+v", p, c)
		}
	}
}

func TestNewSamplerErrors(t *testing.T) {
	if _, err := NewSampler(Cluster, NewRand(1), 0); err == nil {
		t.Error("expected error for zero clusters")
	}
	if _, err := NewSampler(Method("spiral"), NewRand(1), 1); !errors.Is(err, errUnknownMethod) {
		t.Errorf("unexpected error %v", err)
	}
}

package haversine

import "math"

// EarthRadiusKm is the sphere radius used for every reference answer.
const EarthRadiusKm = 6371.0

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func square(v float64) float64 {
	return v * v
}

// Reference returns the great-circle distance in kilometres between
// (x0, y0) and (x1, y1), where x is longitude and y latitude in degrees.
func Reference(x0, y0, x1, y1 float64) float64 {
	dy := radians(y1 - y0)
	dx := radians(x1 - x0)
	lat0 := radians(y0)
	lat1 := radians(y1)

	a := square(math.Sin(dy/2)) + math.Cos(lat0)*math.Cos(lat1)*square(math.Sin(dx/2))
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}

// Average keeps a running mean of distances. The zero value is ready to use.
type Average struct {
	sum   float64
	count int
}

func (a *Average) Add(d float64) {
	a.sum += d
	a.count++
}

func (a *Average) Count() int { return a.count }

// Value is the mean of all added distances, or 0 when nothing was added.
func (a *Average) Value() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

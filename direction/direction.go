// Package direction provides grid directions in screen coordinates, where
// X grows to the right and Y grows downward.
package direction

import "math"

// Cardinal is one of the four axis-aligned directions.
type Cardinal uint8

const (
	North Cardinal = iota
	South
	East
	West
)

// Point returns the unit grid step for c.
func (c Cardinal) Point() (x, y int) {
	switch c {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

func (c Cardinal) String() string {
	switch c {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return "Cardinal(?)"
}

// Ordinal is one of the eight compass directions.
type Ordinal uint8

const (
	OrdinalNorth Ordinal = iota
	OrdinalNortheast
	OrdinalNorthwest
	OrdinalSouth
	OrdinalSoutheast
	OrdinalSouthwest
	OrdinalEast
	OrdinalWest
)

// FromCardinal converts c to the matching Ordinal.
func FromCardinal(c Cardinal) Ordinal {
	switch c {
	case North:
		return OrdinalNorth
	case South:
		return OrdinalSouth
	case East:
		return OrdinalEast
	default:
		return OrdinalWest
	}
}

var combined = [...]struct{ a, b, result Ordinal }{
	{OrdinalNorth, OrdinalEast, OrdinalNortheast},
	{OrdinalNorth, OrdinalWest, OrdinalNorthwest},
	{OrdinalSouth, OrdinalEast, OrdinalSoutheast},
	{OrdinalSouth, OrdinalWest, OrdinalSouthwest},
}

// Introduce combines o with other. A vertical and a horizontal direction
// merge into their diagonal; any other pair yields other.
func (o Ordinal) Introduce(other Ordinal) Ordinal {
	for _, c := range combined {
		if (o == c.a && other == c.b) || (o == c.b && other == c.a) {
			return c.result
		}
	}
	return other
}

// Reduce removes other from o. Removing a component from a diagonal leaves
// the remaining component; removing o itself leaves nothing and reports
// false; removing anything unrelated leaves o unchanged.
func (o Ordinal) Reduce(other Ordinal) (Ordinal, bool) {
	if o == other {
		return 0, false
	}
	for _, c := range combined {
		if o != c.result {
			continue
		}
		switch other {
		case c.a:
			return c.b, true
		case c.b:
			return c.a, true
		}
	}
	return o, true
}

// Step returns the grid step for o. Diagonals move one tile on each axis.
func (o Ordinal) Step() (x, y int) {
	switch o {
	case OrdinalNorth:
		return 0, -1
	case OrdinalSouth:
		return 0, 1
	case OrdinalEast:
		return 1, 0
	case OrdinalWest:
		return -1, 0
	case OrdinalNortheast:
		return 1, -1
	case OrdinalNorthwest:
		return -1, -1
	case OrdinalSoutheast:
		return 1, 1
	case OrdinalSouthwest:
		return -1, 1
	}
	return 0, 0
}

// Point returns the unit vector for o. Diagonal components are 1/√2.
func (o Ordinal) Point() (x, y float64) {
	sx, sy := o.Step()
	if sx != 0 && sy != 0 {
		return float64(sx) / math.Sqrt2, float64(sy) / math.Sqrt2
	}
	return float64(sx), float64(sy)
}

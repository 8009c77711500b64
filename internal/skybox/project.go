package skybox

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/couchcryptid/starseer/internal/domain"
)

// Face identifies one side of the cube map.
type Face int

const (
	PosX Face = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ
)

var faceNames = [...]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}

func (f Face) String() string {
	if f < PosX || f > NegZ {
		return "invalid"
	}
	return faceNames[f]
}

// Direction returns the unit vector toward an equatorial position. The sky
// is rotated a quarter turn in right ascension so that RA 0h faces +Z and
// the north celestial pole is +Y.
func Direction(c domain.ArcCoordinate) r3.Vec {
	ra := (c.RightAscension() + 90) * math.Pi / 180
	polar := (90 - c.Declination()) * math.Pi / 180
	return r3.Vec{
		X: math.Sin(polar) * math.Cos(ra),
		Y: math.Cos(polar),
		Z: math.Sin(polar) * math.Sin(ra),
	}
}

// cubize pushes a direction out onto the surface of the unit cube.
func cubize(v r3.Vec) r3.Vec {
	m := math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
	if m == 0 {
		return v
	}
	return r3.Scale(1/m, v)
}

// Project maps a position to a cube face and texture coordinates u, v in
// [0, 1], with v increasing upward.
func Project(c domain.ArcCoordinate) (Face, float64, float64) {
	p := cubize(Direction(c))
	ax, ay, az := math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)

	var face Face
	var s, t float64
	switch {
	case ax >= ay && ax >= az:
		if p.X > 0 {
			face, s, t = PosX, -p.Z, p.Y
		} else {
			face, s, t = NegX, p.Z, p.Y
		}
	case ay >= az:
		if p.Y > 0 {
			face, s, t = PosY, p.X, -p.Z
		} else {
			face, s, t = NegY, p.X, p.Z
		}
	default:
		if p.Z > 0 {
			face, s, t = PosZ, p.X, p.Y
		} else {
			face, s, t = NegZ, -p.X, p.Y
		}
	}
	return face, (s + 1) / 2, (t + 1) / 2
}

// cell is a face's position in the 4x3 cross layout, in units of faces with
// row 0 at the top.
func (f Face) cell() (col, row int) {
	switch f {
	case PosY:
		return 1, 0
	case NegX:
		return 0, 1
	case PosZ:
		return 1, 1
	case PosX:
		return 2, 1
	case NegZ:
		return 3, 1
	default: // NegY
		return 1, 2
	}
}

// pixel converts texture coordinates to the nearest pixel within a face,
// rounding halves to even. Row 0 is the top of the face.
func pixel(u, v float64, size int) (x, y int) {
	clamp := func(f float64) int {
		return max(0, min(size-1, int(math.RoundToEven(f))))
	}
	return clamp(float64(size) * u), clamp(float64(size) * (1 - v))
}

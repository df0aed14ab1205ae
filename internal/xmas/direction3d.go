package xmas

// Direction3D is one of the six axis headings in space. Up/Down follow the
// 2-D convention (Up is -Y), Front is +Z.
type Direction3D int

const (
	Up3D Direction3D = iota
	Right3D
	Down3D
	Left3D
	Front3D
	Back3D
)

// Directions3D lists all six headings.
var Directions3D = [6]Direction3D{Up3D, Left3D, Down3D, Right3D, Front3D, Back3D}

func (d Direction3D) Point() Point3D {
	switch d {
	case Up3D:
		return Point3D{0, -1, 0}
	case Right3D:
		return Point3D{1, 0, 0}
	case Down3D:
		return Point3D{0, 1, 0}
	case Left3D:
		return Point3D{-1, 0, 0}
	case Front3D:
		return Point3D{0, 0, 1}
	case Back3D:
		return Point3D{0, 0, -1}
	}
	panic("xmas: invalid 3d direction")
}

func (d Direction3D) Combined(other Direction3D) Point3D {
	return d.Point().Add(other.Point())
}

func (d Direction3D) Inverse() Direction3D {
	switch d {
	case Up3D:
		return Down3D
	case Down3D:
		return Up3D
	case Left3D:
		return Right3D
	case Right3D:
		return Left3D
	case Front3D:
		return Back3D
	default:
		return Front3D
	}
}

// Direction3DFromPoint maps an axis-aligned non-zero vector back to its
// heading; it is the inverse of Point for any positive length.
func Direction3DFromPoint(p Point3D) (Direction3D, error) {
	switch {
	case p.X != 0 && p.Y == 0 && p.Z == 0:
		if p.X > 0 {
			return Right3D, nil
		}
		return Left3D, nil
	case p.X == 0 && p.Y != 0 && p.Z == 0:
		if p.Y > 0 {
			return Down3D, nil
		}
		return Up3D, nil
	case p.X == 0 && p.Y == 0 && p.Z != 0:
		if p.Z > 0 {
			return Front3D, nil
		}
		return Back3D, nil
	}
	return Up3D, ErrNotADirection
}

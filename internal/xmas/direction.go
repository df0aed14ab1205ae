package xmas

// Direction is one of the four grid headings.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the headings clockwise starting at Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// Directions8 lists the offsets of the eight neighbours, clockwise from
// straight up.
var Directions8 = [8]Point2D{
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
	{-1, -1},
}

// Point returns the unit vector for d.
func (d Direction) Point() Point2D {
	switch d {
	case Up:
		return Point2D{0, -1}
	case Right:
		return Point2D{1, 0}
	case Down:
		return Point2D{0, 1}
	case Left:
		return Point2D{-1, 0}
	}
	panic("xmas: invalid direction")
}

// Combined returns the sum of both unit vectors, e.g. Up+Right is the
// north-east diagonal.
func (d Direction) Combined(other Direction) Point2D {
	return d.Point().Add(other.Point())
}

// Turn rotates d clockwise by rot quarter turns.
func (d Direction) Turn(rot QuarterRotation) Direction {
	return Directions[WrapVal(int(d)+int(rot), len(Directions))]
}

// Inverse returns the opposite heading.
func (d Direction) Inverse() Direction {
	return d.Turn(TurnAround)
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	case Left:
		return "<"
	}
	return "?"
}

// QuarterRotation is a clockwise rotation in quarter turns.
type QuarterRotation int

const (
	NoRotation QuarterRotation = iota
	TurnRight
	TurnAround
	TurnLeft
)

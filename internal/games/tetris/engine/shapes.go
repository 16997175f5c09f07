package engine

import "fmt"

// FrameSize is the edge length of the local frame every shape lives in.
const FrameSize = 4

// Cell is a (row, column) position. Rows grow downward.
type Cell struct {
	Row, Col int
}

// shapeTable holds the four occupied local cells per orientation, indexed
// by Orientation. Layouts follow the Super Rotation System spawn and
// rotation states; rotation is rigid with no wall kicks.
type shapeTable [orientationCount][4]Cell

var shapeO = shapeTable{
	Up:    {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	Right: {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	Down:  {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	Left:  {{0, 0}, {0, 1}, {1, 0}, {1, 1}},
}

var shapeI = shapeTable{
	Up:    {{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	Right: {{0, 2}, {1, 2}, {2, 2}, {3, 2}},
	Down:  {{2, 0}, {2, 1}, {2, 2}, {2, 3}},
	Left:  {{0, 1}, {1, 1}, {2, 1}, {3, 1}},
}

var shapeL = shapeTable{
	Up:    {{0, 2}, {1, 0}, {1, 1}, {1, 2}},
	Right: {{0, 1}, {1, 1}, {2, 1}, {2, 2}},
	Down:  {{1, 0}, {1, 1}, {1, 2}, {2, 0}},
	Left:  {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
}

var shapeJ = shapeTable{
	Up:    {{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	Right: {{0, 1}, {0, 2}, {1, 1}, {2, 1}},
	Down:  {{1, 0}, {1, 1}, {1, 2}, {2, 2}},
	Left:  {{0, 1}, {1, 1}, {2, 0}, {2, 1}},
}

var shapeT = shapeTable{
	Up:    {{0, 1}, {1, 0}, {1, 1}, {1, 2}},
	Right: {{0, 1}, {1, 1}, {1, 2}, {2, 1}},
	Down:  {{1, 0}, {1, 1}, {1, 2}, {2, 1}},
	Left:  {{0, 1}, {1, 0}, {1, 1}, {2, 1}},
}

var shapeZ = shapeTable{
	Up:    {{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	Right: {{0, 2}, {1, 1}, {1, 2}, {2, 1}},
	Down:  {{1, 0}, {1, 1}, {2, 1}, {2, 2}},
	Left:  {{0, 1}, {1, 0}, {1, 1}, {2, 0}},
}

var shapeS = shapeTable{
	Up:    {{0, 1}, {0, 2}, {1, 0}, {1, 1}},
	Right: {{0, 1}, {1, 1}, {1, 2}, {2, 2}},
	Down:  {{1, 1}, {1, 2}, {2, 0}, {2, 1}},
	Left:  {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
}

// Shape returns the four local cells kind occupies in orientation o.
// It panics on an unknown kind or orientation.
func Shape(kind Kind, o Orientation) [4]Cell {
	if o >= orientationCount {
		panic(fmt.Sprintf("engine: invalid orientation %d", o))
	}
	switch kind {
	case KindO:
		return shapeO[o]
	case KindI:
		return shapeI[o]
	case KindL:
		return shapeL[o]
	case KindJ:
		return shapeJ[o]
	case KindT:
		return shapeT[o]
	case KindZ:
		return shapeZ[o]
	case KindS:
		return shapeS[o]
	default:
		panic(fmt.Sprintf("engine: invalid piece kind %d", kind))
	}
}

// validateShapes checks that every table entry holds four distinct cells
// inside the local frame.
func validateShapes() error {
	for _, k := range Kinds {
		for _, o := range Orientations {
			seen := make(map[Cell]bool, 4)
			for _, c := range Shape(k, o) {
				if c.Row < 0 || c.Row >= FrameSize || c.Col < 0 || c.Col >= FrameSize {
					return fmt.Errorf("engine: %s/%s cell %v outside %dx%d frame", k, o, c, FrameSize, FrameSize)
				}
				if seen[c] {
					return fmt.Errorf("engine: %s/%s repeats cell %v", k, o, c)
				}
				seen[c] = true
			}
		}
	}
	return nil
}

func init() {
	if err := validateShapes(); err != nil {
		panic(err)
	}
}

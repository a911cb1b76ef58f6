package edmpath

// MoveKind distinguishes the two linear motion classes.
type MoveKind int

const (
	// Rapid is a positioning move (G0); the wire is not cutting.
	Rapid MoveKind = iota
	// Cut is a feed move (G1); the wire erodes along the segment.
	Cut
)

// String returns the lowercase name of the kind.
func (k MoveKind) String() string {
	switch k {
	case Rapid:
		return "rapid"
	case Cut:
		return "cut"
	default:
		return "unknown"
	}
}

// Segment is one resolved element of a motion path. It is a closed
// tagged union: the only implementations are [Linear] and [Arc], and
// consumers are expected to switch exhaustively over the two.
//
// A segment stores only its own endpoint geometry; its start point is
// the previous segment's endpoint (or the program origin for the first
// segment). Callers walking a path must carry the running position via
// [Segment.EndPoint].
type Segment interface {
	// EndPoint returns the absolute endpoint of the segment, which is
	// the start point of the segment that follows it.
	EndPoint() Point

	sealed()
}

// Linear is a straight move to an absolute endpoint.
type Linear struct {
	Kind MoveKind
	X, Y float64
}

// EndPoint returns the absolute endpoint of the move.
func (l Linear) EndPoint() Point { return Point{X: l.X, Y: l.Y} }

func (Linear) sealed() {}

// Arc is a circular move with a fully resolved absolute center.
// Clockwise selects the sweep direction between the two arcs through
// Start and End around Center.
type Arc struct {
	Start     Point
	End       Point
	Center    Point
	Clockwise bool
}

// EndPoint returns the absolute endpoint of the sweep.
func (a Arc) EndPoint() Point { return a.End }

func (Arc) sealed() {}

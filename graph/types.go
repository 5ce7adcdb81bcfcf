package graph

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// MaxVertices is the largest vertex count New and Read accept.
const MaxVertices = 1 << 24

// maxExactEdges is the largest n for which n(n-1)/2 fits in an int64.
const maxExactEdges = 1 << 32

// Sentinel errors for graph construction and parsing.
var (
	// ErrInvalidVertexCount is returned when a graph is requested with N
	// outside [1, MaxVertices].
	ErrInvalidVertexCount = errors.New("graph: vertex count out of range")

	// ErrVertexOutOfRange indicates an endpoint outside [1,N].
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrMalformed is returned by Read for tokens that are not valid counts or IDs.
	ErrMalformed = errors.New("graph: malformed input")

	// ErrTruncated is returned by Read when the input ends before M edges.
	ErrTruncated = errors.New("graph: truncated input")

	// ErrUnknownMode is returned by ParseMode for unrecognized names.
	ErrUnknownMode = errors.New("graph: unknown generation mode")
)

// Edge is an undirected edge normalized so that U < V.
type Edge struct {
	U, V int
}

// NewEdge returns the normalized edge {u,v}.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{U: u, V: v}
}

// String renders the edge as it appears in the file format.
func (e Edge) String() string {
	return fmt.Sprintf("%d %d", e.U, e.V)
}

// Mode selects how a graph was generated. It determines the file name.
type Mode int

const (
	// General graphs carry no connectivity guarantee.
	General Mode = iota
	// Connected graphs always contain the path 1-2-...-N.
	Connected
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case General:
		return "general"
	case Connected:
		return "connected"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "general" or "connected" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "general", "":
		return General, nil
	case "connected":
		return Connected, nil
	default:
		return General, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MaxEdges returns n(n-1)/2, the edge count of the complete simple graph K_n.
// The result saturates at math.MaxInt64 for n above 2^32.
func MaxEdges(n int) int64 {
	if n < 2 {
		return 0
	}
	if int64(n) > maxExactEdges {
		return math.MaxInt64
	}
	a, b := int64(n), int64(n-1)
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}
	return a * b
}

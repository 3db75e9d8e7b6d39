package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Error kinds reported by VecN operations. Match them with errors.Is.
var (
	ErrDimensionMismatch            = errors.New("dimension mismatch")
	ErrUnsupportedOperandType       = errors.New("unsupported operand type")
	ErrInvalidCrossProductDimension = errors.New("cross product requires 3-dimensional vectors")
)

// VectorError describes a failed vector operation
type VectorError struct {
	Op    string // Operation that failed, e.g. "add"
	Kind  error  // One of the Err* kinds above
	Left  int    // Dimension of the receiver (0 when not applicable)
	Right int    // Dimension of the operand (0 when not applicable)
	Type  string // Offending operand type for ErrUnsupportedOperandType
}

func (e *VectorError) Error() string {
	switch {
	case e.Type != "":
		return fmt.Sprintf("vector %s: %v: %s", e.Op, e.Kind, e.Type)
	case e.Left != 0 || e.Right != 0:
		return fmt.Sprintf("vector %s: %v (%d vs %d)", e.Op, e.Kind, e.Left, e.Right)
	default:
		return fmt.Sprintf("vector %s: %v", e.Op, e.Kind)
	}
}

func (e *VectorError) Unwrap() error {
	return e.Kind
}

// VecN is a vector of fixed dimension chosen at construction.
// Values never share their backing storage.
type VecN struct {
	c []float64
}

// NewVecN creates a zero-filled vector of the given dimension
func NewVecN(dim int) VecN {
	if dim < 0 {
		dim = 0
	}
	return VecN{c: make([]float64, dim)}
}

// NewVecNFrom copies the components of a supported numeric sequence.
// Supported sources are []float64, []float32, []int, Vec3 and VecN.
func NewVecNFrom(src any) (VecN, error) {
	switch s := src.(type) {
	case []float64:
		c := make([]float64, len(s))
		copy(c, s)
		return VecN{c: c}, nil
	case []float32:
		c := make([]float64, len(s))
		for i, x := range s {
			c[i] = float64(x)
		}
		return VecN{c: c}, nil
	case []int:
		c := make([]float64, len(s))
		for i, x := range s {
			c[i] = float64(x)
		}
		return VecN{c: c}, nil
	case Vec3:
		return s.ToVecN(), nil
	case VecN:
		return s.Copy(), nil
	}
	return VecN{}, &VectorError{Op: "construct", Kind: ErrUnsupportedOperandType, Type: fmt.Sprintf("%T", src)}
}

// Dim returns the dimension of the vector
func (v VecN) Dim() int {
	return len(v.c)
}

// At returns the component at index i
func (v VecN) At(i int) float64 {
	return v.c[i]
}

// Set writes the component at index i in place
func (v VecN) Set(i int, value float64) {
	v.c[i] = value
}

// Components returns a copy of the components
func (v VecN) Components() []float64 {
	c := make([]float64, len(v.c))
	copy(c, v.c)
	return c
}

// Copy returns a deep copy
func (v VecN) Copy() VecN {
	return VecN{c: v.Components()}
}

func (v VecN) checkDim(op string, other VecN) error {
	if len(v.c) != len(other.c) {
		return &VectorError{Op: op, Kind: ErrDimensionMismatch, Left: len(v.c), Right: len(other.c)}
	}
	return nil
}

// Add returns the component-wise sum
func (v VecN) Add(other VecN) (VecN, error) {
	if err := v.checkDim("add", other); err != nil {
		return VecN{}, err
	}
	out := NewVecN(len(v.c))
	for i := range v.c {
		out.c[i] = v.c[i] + other.c[i]
	}
	return out, nil
}

// Subtract returns the component-wise difference
func (v VecN) Subtract(other VecN) (VecN, error) {
	if err := v.checkDim("subtract", other); err != nil {
		return VecN{}, err
	}
	out := NewVecN(len(v.c))
	for i := range v.c {
		out.c[i] = v.c[i] - other.c[i]
	}
	return out, nil
}

// Negate returns the vector with every component negated
func (v VecN) Negate() VecN {
	return v.Multiply(-1)
}

// Multiply returns the vector scaled by a scalar
func (v VecN) Multiply(scalar float64) VecN {
	out := NewVecN(len(v.c))
	for i, x := range v.c {
		out.c[i] = x * scalar
	}
	return out
}

// Divide divides every component by a numeric scalar.
// Dividing by a vector is not defined and reports ErrUnsupportedOperandType.
func (v VecN) Divide(divisor any) (VecN, error) {
	var s float64
	switch d := divisor.(type) {
	case float64:
		s = d
	case float32:
		s = float64(d)
	case int:
		s = float64(d)
	default:
		return VecN{}, &VectorError{Op: "divide", Kind: ErrUnsupportedOperandType, Type: fmt.Sprintf("%T", divisor)}
	}
	return v.Multiply(1 / s), nil
}

// Equals reports whether dimension and all components match
func (v VecN) Equals(other VecN) bool {
	if len(v.c) != len(other.c) {
		return false
	}
	for i := range v.c {
		if v.c[i] != other.c[i] {
			return false
		}
	}
	return true
}

// Dot returns the dot product of two vectors of equal dimension
func (v VecN) Dot(other VecN) (float64, error) {
	if err := v.checkDim("dot", other); err != nil {
		return 0, err
	}
	return v.dot(other), nil
}

func (v VecN) dot(other VecN) float64 {
	sum := 0.0
	for i := range v.c {
		sum += v.c[i] * other.c[i]
	}
	return sum
}

// Cross returns the cross product; both operands must be 3-dimensional
func (v VecN) Cross(other VecN) (VecN, error) {
	if len(v.c) != 3 || len(other.c) != 3 {
		return VecN{}, &VectorError{Op: "cross", Kind: ErrInvalidCrossProductDimension, Left: len(v.c), Right: len(other.c)}
	}
	a, _ := v.Vec3()
	b, _ := other.Vec3()
	return a.Cross(b).ToVecN(), nil
}

// Pairwise returns the element-wise product
func (v VecN) Pairwise(other VecN) (VecN, error) {
	if err := v.checkDim("pairwise", other); err != nil {
		return VecN{}, err
	}
	out := NewVecN(len(v.c))
	for i := range v.c {
		out.c[i] = v.c[i] * other.c[i]
	}
	return out, nil
}

// LengthSquared returns the self dot product
func (v VecN) LengthSquared() float64 {
	return v.dot(v)
}

// Length returns the magnitude of the vector
func (v VecN) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns a unit-length copy; a zero vector is returned unchanged
func (v VecN) Normalize() VecN {
	length := v.Length()
	if length == 0 {
		return v.Copy()
	}
	return v.Multiply(1 / length)
}

// Vec3 converts a 3-dimensional VecN to a Vec3
func (v VecN) Vec3() (Vec3, error) {
	if len(v.c) != 3 {
		return Vec3{}, &VectorError{Op: "convert", Kind: ErrDimensionMismatch, Left: len(v.c), Right: 3}
	}
	return Vec3{v.c[0], v.c[1], v.c[2]}, nil
}

// String formats the vector as <a, b, ...>
func (v VecN) String() string {
	parts := make([]string, len(v.c))
	for i, x := range v.c {
		parts[i] = fmt.Sprintf("%g", x)
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

package shape

import (
	"errors"
	"fmt"

	"github.com/samber/mo"
)

var (
	ErrUnknownShape = errors.New("unknown shape")
	ErrDimensions   = errors.New("wrong number of dimensions")
)

// Shape is the contract every figure must fulfil.
type Shape interface {
	Area() float64
}

type Square struct {
	Side float64
}

func NewSquare(side float64) Square { return Square{Side: side} }

func (s Square) Area() float64 { return s.Side * s.Side }

type Triangle struct {
	Base   float64
	Height float64
}

func NewTriangle(base, height float64) Triangle { return Triangle{Base: base, Height: height} }

func (t Triangle) Area() float64 { return 0.5 * t.Base * t.Height }

var (
	_ Shape = Square{}
	_ Shape = Triangle{}
)

// Parse builds a shape from its kind ("square" or "triangle") and dimensions.
func Parse(kind string, dims ...float64) mo.Result[Shape] {
	want := map[string]int{"square": 1, "triangle": 2}
	n, ok := want[kind]
	if !ok {
		return mo.Err[Shape](fmt.Errorf("%w: %q", ErrUnknownShape, kind))
	}
	if len(dims) != n {
		return mo.Err[Shape](fmt.Errorf("%w: %s takes %d, got %d", ErrDimensions, kind, n, len(dims)))
	}
	if kind == "square" {
		return mo.Ok[Shape](NewSquare(dims[0]))
	}
	return mo.Ok[Shape](NewTriangle(dims[0], dims[1]))
}

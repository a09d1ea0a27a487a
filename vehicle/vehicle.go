package vehicle

import (
	"fmt"
	"io"

	"github.com/kcmvp/oop/colorable"
)

// Vehicle is the capability set shared by every variant. Each call writes one line.
type Vehicle interface {
	Accelerate(w io.Writer)
	Brake(w io.Writer)
}

// Displayer is kept apart from Vehicle: display text is type specific and is also
// implemented by types that cannot accelerate.
type Displayer interface {
	Display(w io.Writer)
}

type Car struct{}

var (
	_ Vehicle   = Car{}
	_ Displayer = Car{}
)

func (Car) Accelerate(w io.Writer) { fmt.Fprintln(w, "The car is accelerating.") }
func (Car) Brake(w io.Writer)      { fmt.Fprintln(w, "The car is braking.") }
func (Car) Display(w io.Writer)    { fmt.Fprintln(w, "Car") }

type Bicycle struct{}

var (
	_ Vehicle   = Bicycle{}
	_ Displayer = Bicycle{}
)

func (Bicycle) Accelerate(w io.Writer) { fmt.Fprintln(w, "The bicycle is accelerating.") }
func (Bicycle) Brake(w io.Writer)      { fmt.Fprintln(w, "The bicycle is braking.") }
func (Bicycle) Display(w io.Writer)    { fmt.Fprintln(w, "Bicycle") }

// ColoredCar shares only the colour attribute with ColoredBicycle. Neither is a Vehicle.
type ColoredCar struct {
	colorable.Colorable
}

func (c ColoredCar) Display(w io.Writer) { fmt.Fprintf(w, "Car with color %s\n", c.Color()) }

type ColoredBicycle struct {
	colorable.Colorable
}

func (b ColoredBicycle) Display(w io.Writer) {
	fmt.Fprintf(w, "Bicycle with color %s\n", b.Color())
}

var (
	_ Displayer = ColoredCar{}
	_ Displayer = ColoredBicycle{}
)

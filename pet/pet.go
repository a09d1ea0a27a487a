package pet

import (
	"errors"
	"fmt"

	"github.com/samber/mo"
	"github.com/tidwall/gjson"
)

// Species tags accepted by New.
const (
	SpeciesDog = "dog"
	SpeciesCat = "cat"
)

var (
	ErrUnknownSpecies = errors.New("unknown species")
	ErrInvalidJSON    = errors.New("invalid pet json")
)

// Pet is what every variant shares.
type Pet interface {
	Name() string
	Age() int
}

type base struct {
	name string
	age  int
}

func (b base) Name() string { return b.name }
func (b base) Age() int     { return b.age }

type Dog struct {
	base
	breed string
}

func (d *Dog) Breed() string { return d.breed }

type Cat struct {
	base
	coat string
}

func (c *Cat) Coat() string { return c.coat }

var (
	_ Pet = (*Dog)(nil)
	_ Pet = (*Cat)(nil)
)

// New builds the variant named by species. attr is the breed for a dog and the coat
// for a cat. Any other species yields an error wrapping ErrUnknownSpecies.
func New(species, name string, age int, attr string) mo.Result[Pet] {
	b := base{name: name, age: age}
	switch species {
	case SpeciesDog:
		return mo.Ok[Pet](&Dog{base: b, breed: attr})
	case SpeciesCat:
		return mo.Ok[Pet](&Cat{base: b, coat: attr})
	default:
		return mo.Err[Pet](fmt.Errorf("%w: %q", ErrUnknownSpecies, species))
	}
}

// FromJSON reads {"species", "name", "age", "attr"} and hands them to New.
func FromJSON(data []byte) mo.Result[Pet] {
	if !gjson.ValidBytes(data) {
		return mo.Err[Pet](ErrInvalidJSON)
	}
	fields := gjson.GetManyBytes(data, "species", "name", "age", "attr")
	return New(fields[0].String(), fields[1].String(), int(fields[2].Int()), fields[3].String())
}

// Describe renders the one-line summary of a pet, including its variant attribute.
func Describe(p Pet) string {
	line := fmt.Sprintf("Pet: %s, Age: %d", p.Name(), p.Age())
	switch v := p.(type) {
	case *Dog:
		return line + ", Breed: " + v.Breed()
	case *Cat:
		return line + ", Coat: " + v.Coat()
	default:
		return line
	}
}

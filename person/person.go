// Package person models a Person and an Employee built on top of it by embedding.
//
// Employee does not inherit from Person; it holds one and calls Person.Display
// explicitly before adding its own line.
package person

import (
	"errors"
	"fmt"
	"io"

	"github.com/kcmvp/oop/constraint"
)

// Person is a plain attribute holder.
type Person struct {
	name  string
	age   int
	email string
}

// New accepts every input as given; see Validate for optional checks.
func New(name string, age int, email string) Person {
	return Person{name: name, age: age, email: email}
}

func (p Person) Name() string  { return p.name }
func (p Person) Age() int      { return p.age }
func (p Person) Email() string { return p.email }

// Display writes "Name: X, Age: Y, Email: Z".
func (p Person) Display(w io.Writer) {
	fmt.Fprintf(w, "Name: %s, Age: %d, Email: %s\n", p.name, p.age, p.email)
}

// Validate reports every field that would not pass a sign-up form.
func (p Person) Validate() error {
	return errors.Join(
		constraint.Check("name", p.name, constraint.LengthBetween(1, 64)),
		constraint.Check("age", p.age, constraint.Between(0, 150)),
		constraint.Check("email", p.email, constraint.Email()),
	)
}

// Employee is a Person with a role.
type Employee struct {
	Person
	role string
}

func NewEmployee(name string, age int, email, role string) Employee {
	return Employee{Person: New(name, age, email), role: role}
}

func (e Employee) Role() string { return e.role }

// Display writes the person line once, followed by "Role: R".
func (e Employee) Display(w io.Writer) {
	e.Person.Display(w)
	fmt.Fprintf(w, "Role: %s\n", e.role)
}

func (e Employee) Validate() error {
	return errors.Join(
		e.Person.Validate(),
		constraint.Check("role", e.role, constraint.LengthBetween(1, 64)),
	)
}

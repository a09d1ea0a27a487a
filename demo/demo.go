// Package demo runs the walkthrough: one instance of every model, printed in order.
package demo

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/kcmvp/oop/app"
	"github.com/kcmvp/oop/bank"
	"github.com/kcmvp/oop/datasource"
	"github.com/kcmvp/oop/person"
	"github.com/kcmvp/oop/pet"
	"github.com/kcmvp/oop/shape"
	"github.com/kcmvp/oop/vehicle"
)

// Run writes the walkthrough to w. It fails only when the connection holder cannot be
// built or a factory call is rejected.
func Run(w io.Writer) error {
	log := app.Logger()

	person.New("Juan", 30, "juan@example.com").Display(w)
	person.NewEmployee("Ana", 25, "ana@example.com", "Manager").Display(w)

	car := vehicle.Car{}
	car.Accelerate(w)
	car.Display(w)
	bicycle := vehicle.Bicycle{}
	bicycle.Brake(w)
	bicycle.Display(w)

	account := bank.NewAccount(w)
	account.SetBalance(decimal.NewFromInt(1000))
	account.SetNumber("123456")
	fmt.Fprintf(w, "Balance: %s, Account Number: %s\n", account.Balance(), account.Number())
	account.Deposit(decimal.NewFromInt(500))
	fmt.Fprintf(w, "Balance after deposit: %s\n", account.Balance())
	if err := account.Withdraw(decimal.NewFromInt(300)); err != nil {
		log.Warn().Err(err).Msg("withdrawal rejected")
	}
	fmt.Fprintf(w, "Balance after withdrawal: %s\n", account.Balance())

	fmt.Fprintf(w, "Square area: %v\n", shape.NewSquare(5).Area())
	fmt.Fprintf(w, "Triangle area: %v\n", shape.NewTriangle(6, 4).Area())

	conn, err := datasource.Connection()
	if err != nil {
		return fmt.Errorf("connection: %w", err)
	}
	log.Debug().Str("conn", fmt.Sprintf("%p", conn)).Msg("connection ready")

	for _, args := range []struct {
		species, name string
		age           int
		attr          string
	}{
		{pet.SpeciesDog, "Rex", 3, "Labrador"},
		{pet.SpeciesCat, "Mittens", 2, "Siamese"},
	} {
		p, err := pet.New(args.species, args.name, args.age, args.attr).Get()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, pet.Describe(p))
	}

	redCar := vehicle.ColoredCar{}
	redCar.SetColor("Red")
	blueBicycle := vehicle.ColoredBicycle{}
	blueBicycle.SetColor("Blue")
	lo.ForEach([]vehicle.Displayer{redCar, blueBicycle}, func(d vehicle.Displayer, _ int) {
		d.Display(w)
	})
	return nil
}

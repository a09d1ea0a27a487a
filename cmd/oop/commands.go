package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"

	"github.com/kcmvp/oop/constraint"
	"github.com/kcmvp/oop/person"
	"github.com/kcmvp/oop/pet"
	"github.com/kcmvp/oop/shape"
	"github.com/kcmvp/oop/vehicle"
)

func personCmd() *cobra.Command {
	var (
		name, email, role string
		age               int
	)
	cmd := &cobra.Command{
		Use:   "person",
		Short: "Validate and display a person, or an employee when --role is set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				d   vehicle.Displayer
				err error
			)
			if role != "" {
				e := person.NewEmployee(name, age, email, role)
				d, err = e, e.Validate()
			} else {
				p := person.New(name, age, email)
				d, err = p, p.Validate()
			}
			if err != nil {
				return err
			}
			d.Display(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().IntVar(&age, "age", 0, "age in years")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&role, "role", "", "role; makes the person an employee")
	return cmd
}

func petCmd() *cobra.Command {
	var (
		species, name, attr, raw string
		age                      int
	)
	cmd := &cobra.Command{
		Use:   "pet",
		Short: "Create a pet through the factory from flags or a JSON document.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := lo.TernaryF(raw != "",
				func() mo.Result[pet.Pet] { return pet.FromJSON([]byte(raw)) },
				func() mo.Result[pet.Pet] { return pet.New(species, name, age, attr) })
			p, err := res.Get()
			if errors.Is(err, pet.ErrUnknownSpecies) {
				fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("known species: %s, %s", pet.SpeciesDog, pet.SpeciesCat))
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pet.Describe(p))
			return nil
		},
	}
	cmd.Flags().StringVar(&species, "species", pet.SpeciesDog, "dog or cat")
	cmd.Flags().StringVar(&name, "name", "", "pet name")
	cmd.Flags().IntVar(&age, "age", 0, "age in years")
	cmd.Flags().StringVar(&attr, "attr", "", "breed for a dog, coat for a cat")
	cmd.Flags().StringVar(&raw, "json", "", `{"species":"dog","name":"Rex","age":3,"attr":"Labrador"}`)
	return cmd
}

func areaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "area square SIDE | area triangle BASE HEIGHT",
		Short:     "Compute the area of a square or a triangle.",
		Args:      cobra.RangeArgs(2, 3),
		ValidArgs: []string{"square", "triangle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			dims := make([]float64, 0, len(args)-1)
			for _, arg := range args[1:] {
				f, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("dimension %q: %w", arg, err)
				}
				if err := constraint.Check("dimension", f, constraint.Gt(0.0)); err != nil {
					return err
				}
				dims = append(dims, f)
			}
			s, err := shape.Parse(args[0], dims...).Get()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s area: %v\n", args[0], s.Area())
			return nil
		},
	}
}

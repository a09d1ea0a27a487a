package main

import (
	"bytes"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/kcmvp/oop/constraint"
	"github.com/kcmvp/oop/pet"
	"github.com/kcmvp/oop/shape"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_RunsWalkthrough(t *testing.T) {
	out, _, err := run(t, rootCmd)
	require.NoError(t, err)
	require.Contains(t, out, "Name: Juan, Age: 30, Email: juan@example.com\n")
	require.Contains(t, out, "Bicycle with color Blue\n")
}

func TestPersonCmd(t *testing.T) {
	out, _, err := run(t, personCmd(), "--name", "Ana", "--age", "25", "--email", "ana@example.com", "--role", "Manager")
	require.NoError(t, err)
	require.Equal(t, "Name: Ana, Age: 25, Email: ana@example.com\nRole: Manager\n", out)

	out, _, err = run(t, personCmd(), "--name", "Juan", "--age", "30", "--email", "juan@example.com")
	require.NoError(t, err)
	require.Equal(t, "Name: Juan, Age: 30, Email: juan@example.com\n", out)

	_, _, err = run(t, personCmd(), "--name", "Juan", "--age", "30", "--email", "juan")
	require.ErrorIs(t, err, constraint.ErrNotValidEmail)
}

func TestPetCmd(t *testing.T) {
	out, _, err := run(t, petCmd(), "--species", "cat", "--name", "Mittens", "--age", "2", "--attr", "Siamese")
	require.NoError(t, err)
	require.Equal(t, "Pet: Mittens, Age: 2, Coat: Siamese\n", out)

	out, _, err = run(t, petCmd(), "--json", `{"species":"dog","name":"Rex","age":3,"attr":"Labrador"}`)
	require.NoError(t, err)
	require.Equal(t, "Pet: Rex, Age: 3, Breed: Labrador\n", out)

	_, errOut, err := run(t, petCmd(), "--species", "fish", "--name", "Nemo")
	require.ErrorIs(t, err, pet.ErrUnknownSpecies)
	require.Contains(t, errOut, "known species: dog, cat")
}

func TestAreaCmd(t *testing.T) {
	out, _, err := run(t, areaCmd(), "square", "5")
	require.NoError(t, err)
	require.Equal(t, "square area: 25\n", out)

	out, _, err = run(t, areaCmd(), "triangle", "6", "4")
	require.NoError(t, err)
	require.Equal(t, "triangle area: 12\n", out)

	_, _, err = run(t, areaCmd(), "square", "0")
	require.ErrorIs(t, err, constraint.ErrMustGt)

	_, _, err = run(t, areaCmd(), "circle", "1")
	require.ErrorIs(t, err, shape.ErrUnknownShape)

	_, _, err = run(t, areaCmd(), "square", "abc")
	require.Error(t, err)
}

package demo

import (
	"bytes"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf))

	want := []string{
		"Name: Juan, Age: 30, Email: juan@example.com",
		"Name: Ana, Age: 25, Email: ana@example.com",
		"Role: Manager",
		"The car is accelerating.",
		"Car",
		"The bicycle is braking.",
		"Bicycle",
		"Balance: 1000, Account Number: 123456",
		"Balance after deposit: 1500",
		"Balance after withdrawal: 1200",
		"Square area: 25",
		"Triangle area: 12",
		"Pet: Rex, Age: 3, Breed: Labrador",
		"Pet: Mittens, Age: 2, Coat: Siamese",
		"Car with color Red",
		"Bicycle with color Blue",
	}
	require.Equal(t, want, strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"))
}

func TestRun_Repeatable(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, Run(&first))
	require.NoError(t, Run(&second))
	require.Equal(t, first.String(), second.String())
}

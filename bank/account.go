package bank

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInsufficientBalance is returned by Withdraw when the amount exceeds the balance.
var ErrInsufficientBalance = errors.New("insufficient balance")

// Account keeps its balance and number private; they are reached through accessors.
type Account struct {
	balance decimal.Decimal
	number  string
	out     io.Writer
}

// NewAccount returns an empty account. Rejected withdrawals are reported on out, or on
// stdout when out is nil.
func NewAccount(out io.Writer) *Account {
	if out == nil {
		out = os.Stdout
	}
	return &Account{out: out}
}

// Open returns an account with a generated number and the given opening balance.
func Open(out io.Writer, initial decimal.Decimal) *Account {
	a := NewAccount(out)
	a.number = uuid.NewString()
	a.balance = initial
	return a
}

func (a *Account) SetBalance(amount decimal.Decimal) { a.balance = amount }

func (a *Account) Balance() decimal.Decimal { return a.balance }

func (a *Account) SetNumber(number string) { a.number = number }

func (a *Account) Number() string { return a.number }

// Deposit adds amount unconditionally; a negative amount lowers the balance.
func (a *Account) Deposit(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

// Withdraw takes amount out if the balance covers it. Otherwise it prints
// "Insufficient balance." and leaves the balance untouched.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if a.balance.LessThan(amount) {
		fmt.Fprintln(a.out, "Insufficient balance.")
		return fmt.Errorf("withdraw %s from %s: %w", amount, a.balance, ErrInsufficientBalance)
	}
	a.balance = a.balance.Sub(amount)
	return nil
}

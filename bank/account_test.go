package bank

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccount_Accessors(t *testing.T) {
	a := NewAccount(nil)
	require.True(t, a.Balance().IsZero())
	require.Empty(t, a.Number())

	a.SetBalance(decimal.NewFromInt(1000))
	a.SetNumber("123456")
	require.Equal(t, "1000", a.Balance().String())
	require.Equal(t, "123456", a.Number())
}

func TestAccount_Deposit(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"positive", "500", "1500"},
		{"zero", "0", "1000"},
		{"fraction", "0.25", "1000.25"},
		{"negative lowers balance", "-1200", "-200"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAccount(nil)
			a.SetBalance(decimal.NewFromInt(1000))
			a.Deposit(decimal.RequireFromString(tt.amount))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(a.Balance()), "got %s", a.Balance())
		})
	}
}

func TestAccount_Withdraw(t *testing.T) {
	tests := []struct {
		name    string
		balance int64
		amount  int64
		want    int64
		wantErr bool
	}{
		{"within balance", 1500, 300, 1200, false},
		{"whole balance", 300, 300, 0, false},
		{"over balance", 100, 300, 100, true},
		{"empty account", 0, 1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			a := NewAccount(&buf)
			a.SetBalance(decimal.NewFromInt(tt.balance))

			err := a.Withdraw(decimal.NewFromInt(tt.amount))
			require.True(t, decimal.NewFromInt(tt.want).Equal(a.Balance()), "got %s", a.Balance())
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInsufficientBalance)
				require.Equal(t, "Insufficient balance.\n", buf.String())
			} else {
				require.NoError(t, err)
				require.Empty(t, buf.String())
			}
		})
	}
}

func TestOpen(t *testing.T) {
	a := Open(nil, decimal.NewFromInt(50))
	require.Equal(t, "50", a.Balance().String())
	_, err := uuid.Parse(a.Number())
	require.NoError(t, err)
	require.NotEqual(t, a.Number(), Open(nil, decimal.Zero).Number())
}

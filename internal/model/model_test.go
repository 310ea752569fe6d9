package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementKind(t *testing.T) {
	tests := []struct {
		amount string
		want   MovementKind
	}{
		{"200", KindDeposit},
		{"0.01", KindDeposit},
		{"-306.5", KindWithdrawal},
		{"0", KindWithdrawal},
	}
	for _, tt := range tests {
		m := NewMovement(decimal.RequireFromString(tt.amount), time.Time{})
		assert.Equal(t, tt.want, m.Kind(), "Kind(%s)", tt.amount)
	}
}

func TestAccountFirstName(t *testing.T) {
	assert.Equal(t, "Jessica", (&Account{Owner: "Jessica Davis"}).FirstName())
	assert.Equal(t, "Cher", (&Account{Owner: "  Cher "}).FirstName())
	assert.Equal(t, "", (&Account{}).FirstName())
}

func TestAccountCloneIsIndependent(t *testing.T) {
	orig := &Account{Owner: "Afonso Marques"}
	orig.Append(NewMovement(decimal.NewFromInt(100), time.Time{}))

	cp := orig.Clone()
	cp.Append(NewMovement(decimal.NewFromInt(-50), time.Time{}))
	cp.Movements[0].Amount = decimal.NewFromInt(1)

	require.Len(t, orig.Movements, 1)
	assert.True(t, orig.Movements[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.Len(t, cp.Movements, 2)
}

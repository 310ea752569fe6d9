package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"100", "100"},
		{" 455.23 ", "455.23"},
		{"-30", "-30"},
		{"0", "0"},
		{"0.10", "0.1"},
		{"999999999999999.99", "999999999999999.99"},
		{"000000000000000001", "1"},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.True(t, dec(tt.want).Equal(got), "ParseAmount(%q) = %s", tt.input, got)
	}
}

func TestParseAmount_Errors(t *testing.T) {
	inputs := []string{
		"", "   ", "abc", "NaN", "Infinity", "1,000", "12.3.4",
		"1e900000000", "1e-900000000", "1E3", "0.001", "+5", ".5", "5.",
		"1000000000000000",
	}
	for _, input := range inputs {
		_, err := ParseAmount(input)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", input)
	}
}

func TestParseAmount_ExponentReturnsPromptly(t *testing.T) {
	done := make(chan error, 1)
	go func() {
		amount, err := ParseAmount("1e900000000")
		if err == nil {
			_ = amount.GreaterThan(dec("100"))
		}
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrInvalidAmount)
	case <-time.After(2 * time.Second):
		t.Fatal("exponent amount was not rejected")
	}
}

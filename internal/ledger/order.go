package ledger

import (
	"slices"

	"github.com/bankist-dev/bankist/internal/model"
)

// Order returns movements in presentation order without touching the input.
// Sorted order is ascending by amount; ties keep their stored order. Each
// movement carries its own date, so reordering cannot mis-pair timestamps.
func Order(movements []model.Movement, sorted bool) []model.Movement {
	out := slices.Clone(movements)
	if out == nil {
		out = []model.Movement{}
	}
	if sorted {
		slices.SortStableFunc(out, func(a, b model.Movement) int {
			return a.Amount.Cmp(b.Amount)
		})
	}
	return out
}

package cash

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Ealanisln/vetify-api/internal/models"
	"github.com/Ealanisln/vetify-api/internal/money"
)

// DiscrepancyStats summarises the differences of settled shifts.
type DiscrepancyStats struct {
	Shifts               int             `json:"shifts"`
	ShiftsWithDifference int             `json:"shifts_with_difference"`
	Surplus              int             `json:"surplus"`
	Shortage             int             `json:"shortage"`
	WorstDifference      decimal.Decimal `json:"worst_difference"`
	TotalDifference      decimal.Decimal `json:"total_difference"`
	AccuracyPercent      decimal.Decimal `json:"accuracy_percent"`
}

var hundred = decimal.NewFromInt(100)

// Discrepancies skips shifts that were never settled. WorstDifference keeps
// its sign; it is the difference with the largest magnitude.
func Discrepancies(shifts []models.CashShift) DiscrepancyStats {
	st := DiscrepancyStats{
		WorstDifference: decimal.Zero,
		TotalDifference: decimal.Zero,
		AccuracyPercent: decimal.Zero,
	}

	exact := 0
	for _, s := range shifts {
		if s.Difference == nil || s.Status == ShiftActive {
			continue
		}
		st.Shifts++
		diff := *s.Difference
		st.TotalDifference = st.TotalDifference.Add(diff)

		switch OutcomeOf(diff) {
		case OutcomeExact:
			exact++
			continue
		case OutcomeSurplus:
			st.Surplus++
		case OutcomeShortage:
			st.Shortage++
		}
		st.ShiftsWithDifference++
		if diff.Abs().GreaterThan(st.WorstDifference.Abs()) {
			st.WorstDifference = diff
		}
	}

	if st.Shifts > 0 {
		st.AccuracyPercent = decimal.NewFromInt(int64(exact)).
			Mul(hundred).
			DivRound(decimal.NewFromInt(int64(st.Shifts)), money.Scale)
	}
	st.TotalDifference = money.Round(st.TotalDifference)
	return st
}

type TypeTotal struct {
	Type   TransactionType `json:"type"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

type HourTotal struct {
	Hour    int             `json:"hour"`
	Count   int             `json:"count"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type Breakdown struct {
	ByType []TypeTotal `json:"by_type"`
	ByHour []HourTotal `json:"by_hour"`
}

// BreakdownOf groups transactions by type and by hour of day in loc. Both
// lists are sorted and only contain non-empty groups.
func BreakdownOf(txs []models.CashTransaction, loc *time.Location) Breakdown {
	byType := map[TransactionType]*TypeTotal{}
	byHour := map[int]*HourTotal{}

	for _, tx := range txs {
		t := TransactionType(tx.Type)
		tt, ok := byType[t]
		if !ok {
			tt = &TypeTotal{Type: t, Amount: decimal.Zero}
			byType[t] = tt
		}
		tt.Count++
		tt.Amount = tt.Amount.Add(tx.Amount)

		h := tx.CreatedAt.In(loc).Hour()
		ht, ok := byHour[h]
		if !ok {
			ht = &HourTotal{Hour: h, Income: decimal.Zero, Expense: decimal.Zero}
			byHour[h] = ht
		}
		ht.Count++
		switch {
		case t.IsIncome():
			ht.Income = ht.Income.Add(tx.Amount)
		case t.IsExpense():
			ht.Expense = ht.Expense.Add(tx.Amount)
		}
	}

	out := Breakdown{
		ByType: make([]TypeTotal, 0, len(byType)),
		ByHour: make([]HourTotal, 0, len(byHour)),
	}
	for _, tt := range byType {
		out.ByType = append(out.ByType, *tt)
	}
	for _, ht := range byHour {
		out.ByHour = append(out.ByHour, *ht)
	}
	sort.Slice(out.ByType, func(i, j int) bool { return out.ByType[i].Type < out.ByType[j].Type })
	sort.Slice(out.ByHour, func(i, j int) bool { return out.ByHour[i].Hour < out.ByHour[j].Hour })
	return out
}

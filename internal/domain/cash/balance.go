package cash

import (
	"github.com/shopspring/decimal"

	"github.com/Ealanisln/vetify-api/internal/models"
	"github.com/Ealanisln/vetify-api/internal/money"
)

// Net splits transactions into income and expense totals. Unknown types
// are ignored.
func Net(txs []models.CashTransaction) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, tx := range txs {
		switch t := TransactionType(tx.Type); {
		case t.IsIncome():
			income = income.Add(tx.Amount)
		case t.IsExpense():
			expense = expense.Add(tx.Amount)
		}
	}
	return income, expense
}

// RunningBalance is start plus income minus expense.
func RunningBalance(start decimal.Decimal, txs []models.CashTransaction) decimal.Decimal {
	income, expense := Net(txs)
	return money.Round(start.Add(income).Sub(expense))
}

// ExpectedDrawerAmount is the initial float plus completed cash sale payments.
func ExpectedDrawerAmount(initial decimal.Decimal, cashPayments []decimal.Decimal) decimal.Decimal {
	return money.Round(initial.Add(money.Sum(cashPayments...)))
}

type Outcome string

const (
	OutcomeSurplus  Outcome = "surplus"
	OutcomeShortage Outcome = "shortage"
	OutcomeExact    Outcome = "exact"
)

// Difference is counted minus expected.
func Difference(counted, expected decimal.Decimal) decimal.Decimal {
	return money.Round(counted.Sub(expected))
}

func OutcomeOf(diff decimal.Decimal) Outcome {
	switch diff.Sign() {
	case 1:
		return OutcomeSurplus
	case -1:
		return OutcomeShortage
	default:
		return OutcomeExact
	}
}

// Balance is a running total, as returned by the balance queries.
type Balance struct {
	Start            decimal.Decimal `json:"start"`
	Income           decimal.Decimal `json:"income"`
	Expense          decimal.Decimal `json:"expense"`
	Current          decimal.Decimal `json:"current"`
	TransactionCount int             `json:"transaction_count"`
}

func NewBalance(start decimal.Decimal, txs []models.CashTransaction) Balance {
	income, expense := Net(txs)
	return Balance{
		Start:            start,
		Income:           money.Round(income),
		Expense:          money.Round(expense),
		Current:          RunningBalance(start, txs),
		TransactionCount: len(txs),
	}
}

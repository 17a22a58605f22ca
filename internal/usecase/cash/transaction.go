package cash

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Ealanisln/vetify-api/internal/audit"
	domain "github.com/Ealanisln/vetify-api/internal/domain/cash"
	"github.com/Ealanisln/vetify-api/internal/models"
)

type RecordTransactionInput struct {
	TenantID    uint
	DrawerID    uint
	Type        string
	Amount      decimal.Decimal
	Description string
	By          uint
}

type RecordTransaction struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRecordTransaction(repo domain.Repository, audit *audit.Dispatcher) *RecordTransaction {
	return &RecordTransaction{repo: repo, audit: audit}
}

// Execute appends a movement to an open drawer, attributed to the drawer's
// active shift when there is one.
func (uc *RecordTransaction) Execute(ctx context.Context, in RecordTransactionInput) (*models.CashTransaction, error) {
	d, err := getDrawer(ctx, uc.repo, in.TenantID, in.DrawerID)
	if err != nil {
		return nil, err
	}

	var shiftID *uint
	active, err := uc.repo.GetActiveShiftForDrawer(ctx, in.TenantID, d.ID)
	ok, err := hasActiveShift(active, err)
	if err != nil {
		return nil, err
	}
	if ok {
		shiftID = &active.ID
	}

	typ := domain.TransactionType(strings.ToUpper(strings.TrimSpace(in.Type)))
	tx, err := domain.NewTransaction(d, shiftID, typ, in.Amount, strings.TrimSpace(in.Description), in.By)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: tx.TenantID,
		StaffID:  &in.By,
		Action:   "cash_transaction_recorded",
		Entity:   "cash_transaction",
		EntityID: &tx.ID,
		Metadata: map[string]string{"type": tx.Type, "amount": tx.Amount.StringFixed(2)},
	})

	return tx, nil
}

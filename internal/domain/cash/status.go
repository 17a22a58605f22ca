package cash

const (
	DrawerOpen   = "OPEN"
	DrawerClosed = "CLOSED"
)

const (
	ShiftActive    = "ACTIVE"
	ShiftEnded     = "ENDED"
	ShiftHandedOff = "HANDED_OFF"
)

type TransactionType string

const (
	TxSaleCash      TransactionType = "SALE_CASH"
	TxDeposit       TransactionType = "DEPOSIT"
	TxAdjustmentIn  TransactionType = "ADJUSTMENT_IN"
	TxRefundCash    TransactionType = "REFUND_CASH"
	TxWithdrawal    TransactionType = "WITHDRAWAL"
	TxAdjustmentOut TransactionType = "ADJUSTMENT_OUT"
)

func (t TransactionType) IsIncome() bool {
	switch t {
	case TxSaleCash, TxDeposit, TxAdjustmentIn:
		return true
	}
	return false
}

func (t TransactionType) IsExpense() bool {
	switch t {
	case TxRefundCash, TxWithdrawal, TxAdjustmentOut:
		return true
	}
	return false
}

func (t TransactionType) Valid() bool {
	return t.IsIncome() || t.IsExpense()
}

// Sale payment values read when closing a drawer.
const (
	PaymentMethodCash  = "CASH"
	SaleStatusComplete = "COMPLETED"
)

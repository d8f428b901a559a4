package billing

import (
	"errors"
	"time"
)

var (
	ErrInvalidLineItemType = errors.New("line item type must be credit or debit")
	ErrInvalidQuantity     = errors.New("line item quantity must be positive")
)

type LineItemType string

const (
	Credit LineItemType = "credit"
	Debit  LineItemType = "debit"
)

func (t LineItemType) IsValid() bool {
	return t == Credit || t == Debit
}

// LineItem is one ledger entry on an invoice or booking: credits record what
// is owed, debits record what was paid.
type LineItem struct {
	Type      LineItemType `json:"type"`
	Timestamp time.Time    `json:"timestamp"`
	Code      string       `json:"code"`
	Label     string       `json:"label"`
	Quantity  int          `json:"quantity"`
	Amount    int64        `json:"amount"`
}

func NewCredit(at time.Time, code, label string, quantity int, amount int64) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	return LineItem{
		Type:      Credit,
		Timestamp: at,
		Code:      code,
		Label:     label,
		Quantity:  quantity,
		Amount:    amount,
	}, nil
}

func NewDebit(at time.Time, code, label string, amount int64) LineItem {
	return LineItem{
		Type:      Debit,
		Timestamp: at,
		Code:      code,
		Label:     label,
		Quantity:  1,
		Amount:    amount,
	}
}

// CreditQuantity sums the quantities of all credit entries; manually entered
// bookings consume capacity by this sum when no space count is given.
func CreditQuantity(items []LineItem) int {
	total := 0
	for _, it := range items {
		if it.Type == Credit {
			total += it.Quantity
		}
	}
	return total
}

package service

import (
	"context"
	"fmt"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopspring/decimal"
)

// CheckoutSession is the host's checkout session.
type CheckoutSession interface {
	OriginalTransactionKeys() map[string]string
	BuckarooAlreadyPaid() map[string]decimal.Decimal
	Quote() Quote
}

// Quote is the quote held by the checkout session.
type Quote interface {
	ReservedOrderID() string
	ReserveOrderID(ctx context.Context) error
	Save(ctx context.Context) error
}

// GroupTransactionChecker reports whether an order is paid with a group
// transaction, such as a giftcard combined with another method.
type GroupTransactionChecker interface {
	IsGroupTransaction(ctx context.Context, orderID string) (bool, error)
}

// CheckoutHelper reads Buckaroo state kept in the checkout session.
type CheckoutHelper struct {
	Session           CheckoutSession
	GroupTransactions GroupTransactionChecker
}

// OriginalTransactionKey returns the Buckaroo transaction key stored for the
// order.
func (h *CheckoutHelper) OriginalTransactionKey(orderID string) (string, bool) {
	key, ok := h.Session.OriginalTransactionKeys()[orderID]
	return key, ok
}

// AlreadyPaid returns the amount already paid for the order through Buckaroo.
func (h *CheckoutHelper) AlreadyPaid(orderID string) (decimal.Decimal, bool) {
	amount, ok := h.Session.BuckarooAlreadyPaid()[orderID]
	return amount, ok
}

// OrderID returns the reserved order id of the session quote, reserving and
// saving one when the quote has none yet.
func (h *CheckoutHelper) OrderID(ctx context.Context) (string, error) {
	quote := h.Session.Quote()

	if orderID := quote.ReservedOrderID(); orderID != "" {
		return orderID, nil
	}

	if err := quote.ReserveOrderID(ctx); err != nil {
		return "", fmt.Errorf("error reserving order id: [%w]", err)
	}
	if err := quote.Save(ctx); err != nil {
		return "", fmt.Errorf("error saving quote: [%w]", err)
	}

	orderID := quote.ReservedOrderID()
	log.Debug("reserved order id for quote", log.Data{"order_id": orderID})

	return orderID, nil
}

// IsGroupTransaction reports whether the order of the session quote is paid
// with a group transaction.
func (h *CheckoutHelper) IsGroupTransaction(ctx context.Context) (bool, error) {
	orderID, err := h.OrderID(ctx)
	if err != nil {
		return false, err
	}

	return h.GroupTransactions.IsGroupTransaction(ctx, orderID)
}

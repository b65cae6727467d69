package models

import "github.com/shopspring/decimal"

// CheckoutPaymentRest records a Buckaroo payment for an order of the quote
type CheckoutPaymentRest struct {
	OriginalTransactionKey string          `json:"original_transaction_key" validate:"required"`
	AlreadyPaid            decimal.Decimal `json:"already_paid"`
}

// OriginalTransactionKeyRest is the transaction key stored for an order
type OriginalTransactionKeyRest struct {
	OrderID                string `json:"order_id"`
	OriginalTransactionKey string `json:"original_transaction_key"`
}

// AlreadyPaidRest is the amount already paid for an order through Buckaroo
type AlreadyPaidRest struct {
	OrderID     string          `json:"order_id"`
	AlreadyPaid decimal.Decimal `json:"already_paid"`
}

// OrderIDRest is the order increment id reserved for a quote
type OrderIDRest struct {
	QuoteID string `json:"quote_id"`
	OrderID string `json:"order_id"`
}

// GroupTransactionStatusRest reports whether the order of a quote is paid with
// a group transaction
type GroupTransactionStatusRest struct {
	QuoteID          string `json:"quote_id"`
	OrderID          string `json:"order_id"`
	GroupTransaction bool   `json:"group_transaction"`
}

// GroupTransactionRest is one transaction of a group transaction
type GroupTransactionRest struct {
	TransactionKey string          `json:"transaction_key" validate:"required"`
	OrderID        string          `json:"order_id" validate:"required"`
	Method         string          `json:"method,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
}

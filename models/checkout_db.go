package models

// CheckoutSessionDB is the Buckaroo state kept for a quote during checkout.
// Paid amounts are stored as decimal strings keyed by order increment id.
type CheckoutSessionDB struct {
	QuoteID                 string            `bson:"_id"`
	ReservedOrderID         string            `bson:"reserved_order_id,omitempty"`
	OriginalTransactionKeys map[string]string `bson:"original_transaction_keys,omitempty"`
	AlreadyPaid             map[string]string `bson:"already_paid,omitempty"`
}

// GroupTransactionDB is one part of an order paid with several Buckaroo
// transactions, such as a giftcard combined with another method
type GroupTransactionDB struct {
	TransactionKey string `bson:"_id"`
	OrderID        string `bson:"order_id"`
	Method         string `bson:"method,omitempty"`
	Amount         string `bson:"amount,omitempty"`
}

package fixtures

import "github.com/buckaroo/buckaroo-payments.api/models"

var QuoteID = "1042"
var OriginalTransactionKey = "4E8BD922192746C3918BF4077CXXXXXX"

// GetCheckoutSessionDB returns the checkout session of QuoteID with a payment
// of 25.00 recorded for OrderIncrementID and the given reserved order id
func GetCheckoutSessionDB(reservedOrderID string) *models.CheckoutSessionDB {
	return &models.CheckoutSessionDB{
		QuoteID:                 QuoteID,
		ReservedOrderID:         reservedOrderID,
		OriginalTransactionKeys: map[string]string{OrderIncrementID: OriginalTransactionKey},
		AlreadyPaid:             map[string]string{OrderIncrementID: "25.00"},
	}
}

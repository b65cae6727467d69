package transformers

import (
	"github.com/buckaroo/buckaroo-payments.api/models"
)

// GroupTransactionTransformer transforms group transactions between their REST
// and DB representations
type GroupTransactionTransformer struct{}

// TransformToDB transforms a group transaction REST model into a DB model
func (gt GroupTransactionTransformer) TransformToDB(rest models.GroupTransactionRest) models.GroupTransactionDB {
	return models.GroupTransactionDB{
		TransactionKey: rest.TransactionKey,
		OrderID:        rest.OrderID,
		Method:         rest.Method,
		Amount:         rest.Amount.String(),
	}
}

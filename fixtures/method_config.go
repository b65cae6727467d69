package fixtures

import "github.com/buckaroo/buckaroo-payments.api/models"

var CreditCardMethod = "buckaroo_magento2_creditcard"

// GetMethodConfigDB returns a stored method config with an optional mode
// override for the "nl" store view
func GetMethodConfigDB(method string, active int, nlActive *int) *models.MethodConfigDB {
	methodConfig := &models.MethodConfigDB{
		Method:            method,
		Active:            active,
		SortedCreditcards: "visa,mastercard,amex",
	}

	if nlActive != nil {
		methodConfig.Stores = map[string]models.StoreMethodConfigDB{
			"nl": {Active: nlActive, SortedCreditcards: "mastercard,visa"},
		}
	}

	return methodConfig
}

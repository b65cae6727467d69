package transformers

import (
	"github.com/buckaroo/buckaroo-payments.api/models"
)

// MethodConfigTransformer transforms payment method configuration between rest
// and database models
type MethodConfigTransformer struct{}

// TransformToDB transforms the method config rest model into the database model
func (mt MethodConfigTransformer) TransformToDB(rest models.MethodConfigRest) models.MethodConfigDB {
	methodConfig := models.MethodConfigDB{
		Method:            rest.Method,
		Active:            rest.Active,
		SortedCreditcards: rest.SortedCreditcards,
	}

	if len(rest.Stores) > 0 {
		methodConfig.Stores = make(map[string]models.StoreMethodConfigDB, len(rest.Stores))
		for store, storeConfig := range rest.Stores {
			methodConfig.Stores[store] = models.StoreMethodConfigDB(storeConfig)
		}
	}

	return methodConfig
}

// TransformToRest transforms the method config database model into the rest model
func (mt MethodConfigTransformer) TransformToRest(dbResource models.MethodConfigDB) models.MethodConfigRest {
	methodConfig := models.MethodConfigRest{
		Method:            dbResource.Method,
		Active:            dbResource.Active,
		SortedCreditcards: dbResource.SortedCreditcards,
	}

	if len(dbResource.Stores) > 0 {
		methodConfig.Stores = make(map[string]models.StoreMethodConfigRest, len(dbResource.Stores))
		for store, storeConfig := range dbResource.Stores {
			methodConfig.Stores[store] = models.StoreMethodConfigRest(storeConfig)
		}
	}

	return methodConfig
}

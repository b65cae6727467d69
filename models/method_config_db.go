package models

// MethodConfigDB is the stored configuration of a single payment method
type MethodConfigDB struct {
	Method            string                         `bson:"_id"`
	Active            int                            `bson:"active"`
	SortedCreditcards string                         `bson:"sorted_creditcards,omitempty"`
	Stores            map[string]StoreMethodConfigDB `bson:"stores,omitempty"`
}

// StoreMethodConfigDB overrides method settings for one store view
type StoreMethodConfigDB struct {
	Active            *int   `bson:"active,omitempty"`
	SortedCreditcards string `bson:"sorted_creditcards,omitempty"`
}

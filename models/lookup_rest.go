package models

// StatusCodeRest is a single entry of the status code table
type StatusCodeRest struct {
	Name string `json:"name"`
	Code int    `json:"code"`
}

// ModeRest is the resolved mode for a payment method and store
type ModeRest struct {
	PaymentMethod string `json:"payment_method,omitempty"`
	Store         string `json:"store,omitempty"`
	Mode          Mode   `json:"mode"`
	Name          string `json:"name"`
}

// MobileRest reports whether the calling browser is a mobile device
type MobileRest struct {
	Mobile bool `json:"mobile"`
}

// MethodConfigRest is the REST representation of a payment method configuration
type MethodConfigRest struct {
	Method            string                           `json:"method"`
	Active            int                              `json:"active"             validate:"gte=0,lte=2"`
	SortedCreditcards string                           `json:"sorted_creditcards,omitempty"`
	Stores            map[string]StoreMethodConfigRest `json:"stores,omitempty"   validate:"dive"`
}

// StoreMethodConfigRest overrides method settings for one store view
type StoreMethodConfigRest struct {
	Active            *int   `json:"active,omitempty"             validate:"omitempty,gte=0,lte=2"`
	SortedCreditcards string `json:"sorted_creditcards,omitempty"`
}

package service

import "github.com/buckaroo/buckaroo-payments.api/models"

// MethodFamilyRegistry resolves payment method codes to their family. It is
// built once from configuration and matches method codes exactly.
type MethodFamilyRegistry struct {
	families map[string]models.MethodFamily
}

// NewMethodFamilyRegistry returns a registry tagging the given methods as
// deferred payment methods.
func NewMethodFamilyRegistry(deferredMethods []string) *MethodFamilyRegistry {
	families := make(map[string]models.MethodFamily, len(deferredMethods))
	for _, method := range deferredMethods {
		families[method] = models.MethodFamilyDeferred
	}
	return &MethodFamilyRegistry{families: families}
}

// Family returns the family of the payment method, standard when unknown.
func (r *MethodFamilyRegistry) Family(method string) models.MethodFamily {
	if family, ok := r.families[method]; ok {
		return family
	}
	return models.MethodFamilyStandard
}

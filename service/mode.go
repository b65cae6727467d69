package service

import (
	"context"
	"fmt"

	"github.com/buckaroo/buckaroo-payments.api/models"
)

// ModeResolver resolves the active mode of the account or a payment method.
type ModeResolver struct {
	Account AccountConfigProvider
	Methods MethodConfigFactory
}

// Mode returns the account mode when no payment method is given or the account
// is inactive, otherwise the mode of the payment method for the store. An empty
// store uses the method's default scope.
func (r *ModeResolver) Mode(ctx context.Context, paymentMethod string, store string) (models.Mode, error) {
	baseMode, err := r.Account.ActiveMode(ctx)
	if err != nil {
		return models.ModeInactive, fmt.Errorf("error getting account mode: [%w]", err)
	}

	if paymentMethod == "" || baseMode == models.ModeInactive {
		return baseMode, nil
	}

	provider, err := r.Methods.Get(paymentMethod)
	if err != nil {
		return models.ModeInactive, err
	}

	return provider.ActiveMode(ctx, store)
}

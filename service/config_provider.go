package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/buckaroo/buckaroo-payments.api/config"
	"github.com/buckaroo/buckaroo-payments.api/dao"
	"github.com/buckaroo/buckaroo-payments.api/models"
)

// ErrUnknownPaymentMethod is returned when no config provider is registered
// for a payment method.
var ErrUnknownPaymentMethod = errors.New("no config provider registered for payment method")

// AccountConfigProvider exposes the account level Buckaroo configuration.
type AccountConfigProvider interface {
	ActiveMode(ctx context.Context) (models.Mode, error)
}

// MethodConfigProvider exposes the configuration of a single payment method.
// An empty store returns the method's default scope.
type MethodConfigProvider interface {
	ActiveMode(ctx context.Context, store string) (models.Mode, error)
}

// MethodConfigFactory returns the config provider of a payment method.
type MethodConfigFactory interface {
	Get(method string) (MethodConfigProvider, error)
}

// AccountConfig reads the account mode from the service configuration.
type AccountConfig struct {
	Config config.Config
}

// ActiveMode returns the account level mode.
func (a *AccountConfig) ActiveMode(ctx context.Context) (models.Mode, error) {
	return models.Mode(a.Config.ActiveMode), nil
}

// MethodConfigRegistry hands out config providers for the registered payment
// methods, backed by the method configuration store.
type MethodConfigRegistry struct {
	DAO     dao.DAO
	methods map[string]struct{}
}

// NewMethodConfigRegistry returns a registry for the given method codes.
func NewMethodConfigRegistry(d dao.DAO, methods []string) *MethodConfigRegistry {
	registered := make(map[string]struct{}, len(methods))
	for _, method := range methods {
		registered[method] = struct{}{}
	}
	return &MethodConfigRegistry{DAO: d, methods: registered}
}

// Get returns the config provider of the payment method.
func (r *MethodConfigRegistry) Get(method string) (MethodConfigProvider, error) {
	if _, ok := r.methods[method]; !ok {
		return nil, fmt.Errorf("%w: [%s]", ErrUnknownPaymentMethod, method)
	}
	return &StoredMethodConfig{DAO: r.DAO, Method: method}, nil
}

// StoredMethodConfig is the config provider of a payment method whose settings
// live in the method configuration store.
type StoredMethodConfig struct {
	DAO    dao.DAO
	Method string
}

// ActiveMode returns the mode of the method, preferring a store override. A
// method without stored configuration is inactive.
func (s *StoredMethodConfig) ActiveMode(ctx context.Context, store string) (models.Mode, error) {
	methodConfig, err := s.DAO.GetMethodConfig(ctx, s.Method)
	if err != nil {
		return models.ModeInactive, fmt.Errorf("error getting config for payment method [%s]: [%w]", s.Method, err)
	}
	if methodConfig == nil {
		return models.ModeInactive, nil
	}

	if store != "" {
		if storeConfig, ok := methodConfig.Stores[store]; ok && storeConfig.Active != nil {
			return models.Mode(*storeConfig.Active), nil
		}
	}

	return models.Mode(methodConfig.Active), nil
}

// SortedCreditcards returns the credit card sort order of the method for a
// store, falling back to the method default.
func (s *StoredMethodConfig) SortedCreditcards(ctx context.Context, store string) (string, error) {
	methodConfig, err := s.DAO.GetMethodConfig(ctx, s.Method)
	if err != nil {
		return "", fmt.Errorf("error getting config for payment method [%s]: [%w]", s.Method, err)
	}
	if methodConfig == nil {
		return "", nil
	}

	if storeConfig, ok := methodConfig.Stores[store]; ok && storeConfig.SortedCreditcards != "" {
		return storeConfig.SortedCreditcards, nil
	}

	return methodConfig.SortedCreditcards, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/buckaroo/buckaroo-payments.api/config"
	"github.com/buckaroo/buckaroo-payments.api/dao"
	"github.com/buckaroo/buckaroo-payments.api/models"
	"github.com/buckaroo/buckaroo-payments.api/transformers"
	"github.com/companieshouse/chs.go/log"
)

// MethodConfigService reads and writes payment method configuration synced
// from the host's admin
type MethodConfigService struct {
	DAO     dao.DAO
	Config  config.Config
	Methods *MethodConfigRegistry
}

// GetMethodConfig returns the stored configuration of a payment method
func (service *MethodConfigService) GetMethodConfig(ctx context.Context, method string) (*models.MethodConfigRest, ResponseType, error) {
	if _, err := service.Methods.Get(method); err != nil {
		return nil, NotFound, err
	}

	methodConfig, err := service.DAO.GetMethodConfig(ctx, method)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payment method config from database: [%v]", err)
	}
	if methodConfig == nil {
		return nil, NotFound, fmt.Errorf("no config stored for payment method [%s]", method)
	}

	methodConfigRest := transformers.MethodConfigTransformer{}.TransformToRest(*methodConfig)
	return &methodConfigRest, Success, nil
}

// UpsertMethodConfig stores the configuration of a payment method
func (service *MethodConfigService) UpsertMethodConfig(ctx context.Context, method string, methodConfigRest models.MethodConfigRest) (*models.MethodConfigRest, ResponseType, error) {
	if _, err := service.Methods.Get(method); err != nil {
		return nil, NotFound, err
	}

	methodConfigRest.Method = method
	err := validate.Struct(methodConfigRest)
	if err != nil {
		return nil, InvalidData, fmt.Errorf("invalid payment method config: [%v]", err)
	}

	methodConfig := transformers.MethodConfigTransformer{}.TransformToDB(methodConfigRest)
	err = service.DAO.UpsertMethodConfig(ctx, &methodConfig)
	if err != nil {
		return nil, Error, fmt.Errorf("error writing payment method config to database: [%v]", err)
	}

	log.Info("payment method config stored", log.Data{"payment_method": method, "active": methodConfig.Active})

	return &methodConfigRest, Success, nil
}

// CreditCardSortOrder returns the store scoped sort order of the credit card
// method
func (service *MethodConfigService) CreditCardSortOrder(ctx context.Context, store string) (string, ResponseType, error) {
	provider := &StoredMethodConfig{DAO: service.DAO, Method: service.Config.CreditCardMethod}

	sortOrder, err := provider.SortedCreditcards(ctx, store)
	if err != nil {
		return "", Error, err
	}

	return sortOrder, Success, nil
}

package service

import (
	"errors"
	"fmt"

	"github.com/buckaroo/buckaroo-payments.api/mappers"
	"github.com/buckaroo/buckaroo-payments.api/models"
	"github.com/buckaroo/buckaroo-payments.api/transformers"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// CreditMemoService runs the credit memo total collectors for the host
type CreditMemoService struct {
	Collectors []TotalCollector
	Families   *MethodFamilyRegistry
}

// NewCreditMemoService returns a service running the Buckaroo fee collector
func NewCreditMemoService(families *MethodFamilyRegistry) *CreditMemoService {
	return &CreditMemoService{
		Collectors: []TotalCollector{NewBuckarooFeeCollector()},
		Families:   families,
	}
}

// CollectTotals builds the credit memo from the request, runs every collector
// over it and returns the updated order and credit memo totals
func (service *CreditMemoService) CollectTotals(req models.CollectTotalsRequest) (*models.CollectTotalsResponse, ResponseType, error) {
	err := validate.Struct(req)
	if err != nil {
		return nil, InvalidData, fmt.Errorf("invalid collect totals request: [%v]", err)
	}

	err = validateAmounts(req)
	if err != nil {
		return nil, InvalidData, err
	}

	creditMemo := transformers.CreditMemoTransformer{Families: service.Families}.TransformToDomain(req)

	for _, collector := range service.Collectors {
		collector.Collect(creditMemo)
	}

	response := mappers.MapToCollectTotalsResponse(creditMemo)

	return &response, Success, nil
}

func validateAmounts(req models.CollectTotalsRequest) error {
	amounts := map[string]decimal.Decimal{
		"order.base_buckaroo_fee":          req.Order.BaseBuckarooFee,
		"order.buckaroo_fee":               req.Order.BuckarooFee,
		"order.base_buckaroo_fee_invoiced": req.Order.BaseBuckarooFeeInvoiced,
		"order.buckaroo_fee_invoiced":      req.Order.BuckarooFeeInvoiced,
		"order.base_buckaroo_fee_refunded": req.Order.BaseBuckarooFeeRefunded,
		"order.buckaroo_fee_refunded":      req.Order.BuckarooFeeRefunded,
	}
	if req.Invoice != nil {
		amounts["invoice.base_buckaroo_fee"] = req.Invoice.BaseBuckarooFee
		amounts["invoice.buckaroo_fee"] = req.Invoice.BuckarooFee
	}

	for field, amount := range amounts {
		if amount.IsNegative() {
			return errors.New("invalid collect totals request: [" + field + " must not be negative]")
		}
	}

	return nil
}

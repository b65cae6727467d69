package transformers

import (
	"github.com/buckaroo/buckaroo-payments.api/models"
)

// MethodFamilyResolver resolves a payment method code to its family
type MethodFamilyResolver interface {
	Family(method string) models.MethodFamily
}

// CreditMemoTransformer transforms the collect totals request into the credit
// memo domain model
type CreditMemoTransformer struct {
	Families MethodFamilyResolver
}

// TransformToDomain builds the credit memo, with its order, invoice and refund
// request, from the collect totals request
func (ct CreditMemoTransformer) TransformToDomain(rest models.CollectTotalsRequest) *models.CreditMemo {
	order := &models.Order{
		IncrementID: rest.Order.IncrementID,
		Payment: models.Payment{
			Method: rest.Order.Payment.Method,
			Family: ct.Families.Family(rest.Order.Payment.Method),
		},
		BaseBuckarooFee:         rest.Order.BaseBuckarooFee,
		BuckarooFee:             rest.Order.BuckarooFee,
		BaseBuckarooFeeInvoiced: rest.Order.BaseBuckarooFeeInvoiced,
		BuckarooFeeInvoiced:     rest.Order.BuckarooFeeInvoiced,
		BaseBuckarooFeeRefunded: rest.Order.BaseBuckarooFeeRefunded,
		BuckarooFeeRefunded:     rest.Order.BuckarooFeeRefunded,
		CreditMemoCount:         rest.Order.CreditMemoCount,
	}

	var invoice *models.Invoice
	if rest.Invoice != nil {
		invoice = &models.Invoice{
			IncrementID:     rest.Invoice.IncrementID,
			BaseBuckarooFee: rest.Invoice.BaseBuckarooFee,
			BuckarooFee:     rest.Invoice.BuckarooFee,
		}
	}

	return &models.CreditMemo{
		Order:           order,
		Invoice:         invoice,
		RefundRequest:   models.RefundRequest(rest.RefundRequest),
		BaseBuckarooFee: rest.CreditMemo.BaseBuckarooFee,
		BuckarooFee:     rest.CreditMemo.BuckarooFee,
		BaseGrandTotal:  rest.CreditMemo.BaseGrandTotal,
		GrandTotal:      rest.CreditMemo.GrandTotal,
	}
}

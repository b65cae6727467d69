package mappers

import (
	"sort"

	"github.com/buckaroo/buckaroo-payments.api/models"
)

// MapToCollectTotalsResponse maps the collected credit memo and its order back
// to the response returned to the host
func MapToCollectTotalsResponse(creditMemo *models.CreditMemo) models.CollectTotalsResponse {
	response := models.CollectTotalsResponse{
		CreditMemo: models.CreditMemoRest{
			BaseBuckarooFee: creditMemo.BaseBuckarooFee,
			BuckarooFee:     creditMemo.BuckarooFee,
			BaseGrandTotal:  creditMemo.BaseGrandTotal,
			GrandTotal:      creditMemo.GrandTotal,
		},
	}

	if creditMemo.Order != nil {
		response.Order = MapToOrderRest(*creditMemo.Order)
	}

	return response
}

// MapToOrderRest maps the order fee totals to their rest representation
func MapToOrderRest(order models.Order) models.OrderRest {
	return models.OrderRest{
		IncrementID:             order.IncrementID,
		Payment:                 models.PaymentRest{Method: order.Payment.Method},
		BaseBuckarooFee:         order.BaseBuckarooFee,
		BuckarooFee:             order.BuckarooFee,
		BaseBuckarooFeeInvoiced: order.BaseBuckarooFeeInvoiced,
		BuckarooFeeInvoiced:     order.BuckarooFeeInvoiced,
		BaseBuckarooFeeRefunded: order.BaseBuckarooFeeRefunded,
		BuckarooFeeRefunded:     order.BuckarooFeeRefunded,
		CreditMemoCount:         order.CreditMemoCount,
	}
}

// MapToStatusCodes maps the status code table to a list sorted by code
func MapToStatusCodes(codes map[string]int) []models.StatusCodeRest {
	statuses := make([]models.StatusCodeRest, 0, len(codes))
	for name, code := range codes {
		statuses = append(statuses, models.StatusCodeRest{Name: name, Code: code})
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Code < statuses[j].Code
	})

	return statuses
}

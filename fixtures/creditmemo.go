package fixtures

import (
	"github.com/buckaroo/buckaroo-payments.api/models"
	"github.com/shopspring/decimal"
)

var IdealMethod = "buckaroo_magento2_ideal"
var AfterpayMethod = "buckaroo_magento2_afterpay20"
var OrderIncrementID = "000000042"

// GetOrder returns an order charged the given base fee, with the display
// currency fee at 1.2 times the base fee
func GetOrder(method string, baseFee, baseInvoiced, baseRefunded int64) *models.Order {
	return &models.Order{
		IncrementID:             OrderIncrementID,
		Payment:                 models.Payment{Method: method, Family: models.MethodFamilyStandard},
		BaseBuckarooFee:         decimal.NewFromInt(baseFee),
		BuckarooFee:             displayAmount(baseFee),
		BaseBuckarooFeeInvoiced: decimal.NewFromInt(baseInvoiced),
		BuckarooFeeInvoiced:     displayAmount(baseInvoiced),
		BaseBuckarooFeeRefunded: decimal.NewFromInt(baseRefunded),
		BuckarooFeeRefunded:     displayAmount(baseRefunded),
	}
}

// GetCreditMemo returns a credit memo for the order with the given grand total
func GetCreditMemo(order *models.Order, baseGrandTotal int64) *models.CreditMemo {
	return &models.CreditMemo{
		Order:          order,
		BaseGrandTotal: decimal.NewFromInt(baseGrandTotal),
		GrandTotal:     displayAmount(baseGrandTotal),
	}
}

// GetCollectTotalsRequest returns a collect totals request for an order
// charged the given base fee and fully invoiced
func GetCollectTotalsRequest(method string, baseFee int64, refundRequest map[string]interface{}) models.CollectTotalsRequest {
	return models.CollectTotalsRequest{
		Order: models.OrderRest{
			IncrementID:             OrderIncrementID,
			Payment:                 models.PaymentRest{Method: method},
			BaseBuckarooFee:         decimal.NewFromInt(baseFee),
			BuckarooFee:             displayAmount(baseFee),
			BaseBuckarooFeeInvoiced: decimal.NewFromInt(baseFee),
			BuckarooFeeInvoiced:     displayAmount(baseFee),
		},
		CreditMemo: models.CreditMemoRest{
			BaseGrandTotal: decimal.NewFromInt(100),
			GrandTotal:     displayAmount(100),
		},
		RefundRequest: refundRequest,
	}
}

func displayAmount(base int64) decimal.Decimal {
	return decimal.NewFromInt(base).Mul(decimal.NewFromFloat(1.2))
}

package service

import (
	"github.com/buckaroo/buckaroo-payments.api/models"
	"github.com/companieshouse/chs.go/log"
	"github.com/shopspring/decimal"
)

// TotalCollector is a single step of the host's credit memo totals chain.
// Collect returns the collector so that calls can be chained.
type TotalCollector interface {
	Collect(creditMemo *models.CreditMemo) TotalCollector
}

// BuckarooFeeCollector refunds the Buckaroo fee on a credit memo.
type BuckarooFeeCollector struct{}

// NewBuckarooFeeCollector returns a collector for the Buckaroo fee total.
func NewBuckarooFeeCollector() *BuckarooFeeCollector {
	return &BuckarooFeeCollector{}
}

// Collect works out how much of the Buckaroo fee is refunded by the credit
// memo, adds it to the order's refunded totals and to the credit memo's grand
// totals.
func (c *BuckarooFeeCollector) Collect(creditMemo *models.CreditMemo) TotalCollector {
	order := creditMemo.Order

	if order != nil {
		source := order.Fee()
		if creditMemo.Invoice != nil {
			source = creditMemo.Invoice.Fee()
		}

		if !source.Base.IsZero() && order.BaseBuckarooFeeInvoiced.GreaterThan(order.BaseBuckarooFeeRefunded) {
			fee := RefundableFee(source, order.Payment.Family, order.CreditMemoCount, creditMemo.RefundRequest)

			order.BaseBuckarooFeeRefunded = order.BaseBuckarooFeeRefunded.Add(fee.Base)
			order.BuckarooFeeRefunded = order.BuckarooFeeRefunded.Add(fee.Amount)

			creditMemo.BaseBuckarooFee = fee.Base
			creditMemo.BuckarooFee = fee.Amount

			log.Trace("buckaroo fee collected for credit memo", log.Data{
				"order_id":          order.IncrementID,
				"payment_method":    order.Payment.Method,
				"base_fee":          fee.Base.String(),
				"fee":               fee.Amount.String(),
				"base_fee_refunded": order.BaseBuckarooFeeRefunded.String(),
			})
		}
	}

	creditMemo.BaseGrandTotal = creditMemo.BaseGrandTotal.Add(creditMemo.BaseBuckarooFee)
	creditMemo.GrandTotal = creditMemo.GrandTotal.Add(creditMemo.BuckarooFee)

	return c
}

// RefundableFee returns the part of the source fee refunded by a credit memo.
// A refund form that does not mark the fee refundable excludes it. Deferred
// payment methods only refund the fee while the order has at most one credit
// memo.
func RefundableFee(source models.FeeAmounts, family models.MethodFamily, creditMemoCount int, refund models.RefundRequest) models.FeeAmounts {
	fee := source

	if len(refund) > 0 && !refund.HasFeeRefundable() {
		fee = models.FeeAmounts{Base: decimal.Zero, Amount: decimal.Zero}
	}

	if family == models.MethodFamilyDeferred && creditMemoCount > 1 {
		fee = models.FeeAmounts{Base: decimal.Zero, Amount: decimal.Zero}
	}

	return fee
}

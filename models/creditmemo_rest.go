package models

import "github.com/shopspring/decimal"

// CollectTotalsRequest is the body the host posts while collecting credit memo
// totals
type CollectTotalsRequest struct {
	Order         OrderRest              `json:"order"`
	Invoice       *InvoiceRest           `json:"invoice,omitempty"`
	CreditMemo    CreditMemoRest         `json:"creditmemo"`
	RefundRequest map[string]interface{} `json:"refund_request,omitempty"`
}

// CollectTotalsResponse returns the mutated order and credit memo to the host
type CollectTotalsResponse struct {
	Order      OrderRest      `json:"order"`
	CreditMemo CreditMemoRest `json:"creditmemo"`
}

// OrderRest is the REST representation of the order fee totals
type OrderRest struct {
	IncrementID             string          `json:"increment_id"                validate:"required"`
	Payment                 PaymentRest     `json:"payment"`
	BaseBuckarooFee         decimal.Decimal `json:"base_buckaroo_fee"`
	BuckarooFee             decimal.Decimal `json:"buckaroo_fee"`
	BaseBuckarooFeeInvoiced decimal.Decimal `json:"base_buckaroo_fee_invoiced"`
	BuckarooFeeInvoiced     decimal.Decimal `json:"buckaroo_fee_invoiced"`
	BaseBuckarooFeeRefunded decimal.Decimal `json:"base_buckaroo_fee_refunded"`
	BuckarooFeeRefunded     decimal.Decimal `json:"buckaroo_fee_refunded"`
	CreditMemoCount         int             `json:"creditmemo_count"            validate:"gte=0"`
}

// PaymentRest is the REST representation of the order payment
type PaymentRest struct {
	Method string `json:"method" validate:"required"`
}

// InvoiceRest is the REST representation of the invoice fee
type InvoiceRest struct {
	IncrementID     string          `json:"increment_id"`
	BaseBuckarooFee decimal.Decimal `json:"base_buckaroo_fee"`
	BuckarooFee     decimal.Decimal `json:"buckaroo_fee"`
}

// CreditMemoRest is the REST representation of the credit memo totals
type CreditMemoRest struct {
	BaseBuckarooFee decimal.Decimal `json:"base_buckaroo_fee"`
	BuckarooFee     decimal.Decimal `json:"buckaroo_fee"`
	BaseGrandTotal  decimal.Decimal `json:"base_grand_total"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
}

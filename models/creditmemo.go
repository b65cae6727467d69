package models

import "github.com/shopspring/decimal"

// FeeRefundableKey is the posted credit memo field marking the Buckaroo fee as
// refundable.
const FeeRefundableKey = "buckaroo_fee_refundable"

// MethodFamily groups payment methods that share fee refund behaviour.
type MethodFamily int

const (
	// MethodFamilyStandard covers methods without special fee handling.
	MethodFamilyStandard MethodFamily = iota

	// MethodFamilyDeferred covers methods settled after delivery, such as the
	// afterpay variants.
	MethodFamilyDeferred
)

var methodFamilies = [...]string{
	"standard",
	"deferred",
}

// String representation of `MethodFamily`
func (f MethodFamily) String() string {
	if f < 0 || int(f) >= len(methodFamilies) {
		return "unknown"
	}
	return methodFamilies[f]
}

// Payment is the payment attached to an order.
type Payment struct {
	Method string
	Family MethodFamily
}

// FeeAmounts is a Buckaroo fee in base and display currency.
type FeeAmounts struct {
	Base   decimal.Decimal
	Amount decimal.Decimal
}

// IsZero reports whether both amounts are zero.
func (f FeeAmounts) IsZero() bool {
	return f.Base.IsZero() && f.Amount.IsZero()
}

// Order carries the cumulative Buckaroo fee totals of a host order.
type Order struct {
	IncrementID             string
	Payment                 Payment
	BaseBuckarooFee         decimal.Decimal
	BuckarooFee             decimal.Decimal
	BaseBuckarooFeeInvoiced decimal.Decimal
	BuckarooFeeInvoiced     decimal.Decimal
	BaseBuckarooFeeRefunded decimal.Decimal
	BuckarooFeeRefunded     decimal.Decimal

	// CreditMemoCount is the number of credit memos already on the order.
	CreditMemoCount int
}

// Fee returns the Buckaroo fee charged on the order.
func (o *Order) Fee() FeeAmounts {
	return FeeAmounts{Base: o.BaseBuckarooFee, Amount: o.BuckarooFee}
}

// Invoice carries the Buckaroo fee of a single invoice.
type Invoice struct {
	IncrementID     string
	BaseBuckarooFee decimal.Decimal
	BuckarooFee     decimal.Decimal
}

// Fee returns the Buckaroo fee on the invoice.
func (i *Invoice) Fee() FeeAmounts {
	return FeeAmounts{Base: i.BaseBuckarooFee, Amount: i.BuckarooFee}
}

// RefundRequest holds the credit memo fields posted with a refund. A nil or
// empty request means the credit memo was created without a refund form.
type RefundRequest map[string]interface{}

// HasFeeRefundable reports whether the request marks the fee refundable. Only
// the presence of the key counts, whatever its value.
func (r RefundRequest) HasFeeRefundable() bool {
	_, ok := r[FeeRefundableKey]
	return ok
}

// CreditMemo is the credit memo being assembled by the host.
type CreditMemo struct {
	Order           *Order
	Invoice         *Invoice
	RefundRequest   RefundRequest
	BaseBuckarooFee decimal.Decimal
	BuckarooFee     decimal.Decimal
	BaseGrandTotal  decimal.Decimal
	GrandTotal      decimal.Decimal
}

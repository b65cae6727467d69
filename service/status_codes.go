package service

// Buckaroo status codes
const (
	StatusSuccess             = "BUCKAROO_MAGENTO2_STATUSCODE_SUCCESS"
	StatusFailed              = "BUCKAROO_MAGENTO2_STATUSCODE_FAILED"
	StatusValidationFailure   = "BUCKAROO_MAGENTO2_STATUSCODE_VALIDATION_FAILURE"
	StatusTechnicalError      = "BUCKAROO_MAGENTO2_STATUSCODE_TECHNICAL_ERROR"
	StatusRejected            = "BUCKAROO_MAGENTO2_STATUSCODE_REJECTED"
	StatusWaitingOnUserInput  = "BUCKAROO_MAGENTO2_STATUSCODE_WAITING_ON_USER_INPUT"
	StatusPendingProcessing   = "BUCKAROO_MAGENTO2_STATUSCODE_PENDING_PROCESSING"
	StatusWaitingOnConsumer   = "BUCKAROO_MAGENTO2_STATUSCODE_WAITING_ON_CONSUMER"
	StatusPaymentOnHold       = "BUCKAROO_MAGENTO2_STATUSCODE_PAYMENT_ON_HOLD"
	StatusCancelledByUser     = "BUCKAROO_MAGENTO2_STATUSCODE_CANCELLED_BY_USER"
	StatusCancelledByMerchant = "BUCKAROO_MAGENTO2_STATUSCODE_CANCELLED_BY_MERCHANT"

	// StatusOrderFailed is not issued by Buckaroo, it marks orders that failed
	// to be placed after payment.
	StatusOrderFailed = "BUCKAROO_MAGENTO2_ORDER_FAILED"
)

var statusCodes = map[string]int{
	StatusSuccess:             190,
	StatusFailed:              490,
	StatusValidationFailure:   491,
	StatusTechnicalError:      492,
	StatusRejected:            690,
	StatusWaitingOnUserInput:  790,
	StatusPendingProcessing:   791,
	StatusWaitingOnConsumer:   792,
	StatusPaymentOnHold:       793,
	StatusCancelledByUser:     890,
	StatusCancelledByMerchant: 891,
	StatusOrderFailed:         11014,
}

// StatusCode returns the numeric code for a status name.
func StatusCode(name string) (int, bool) {
	code, ok := statusCodes[name]
	return code, ok
}

// StatusByValue returns the status name for a numeric code. A code of 0 is
// reported as not found.
func StatusByValue(code int) (string, bool) {
	if code == 0 {
		return "", false
	}
	for name, value := range statusCodes {
		if value == code {
			return name, true
		}
	}
	return "", false
}

// StatusCodes returns a copy of the status code table.
func StatusCodes() map[string]int {
	codes := make(map[string]int, len(statusCodes))
	for name, code := range statusCodes {
		codes[name] = code
	}
	return codes
}

package service

import "strconv"

const transactionInfoKeySeparator = " => "

// TransactionAdditionalInfo flattens nested transaction data into a single
// level map for display. Nested keys are joined with " => ", list entries are
// keyed by index and booleans are rendered as "true" or "false".
func TransactionAdditionalInfo(data map[string]interface{}) map[string]interface{} {
	return flattenTransactionInfo(data, map[string]interface{}{}, "")
}

func flattenTransactionInfo(data map[string]interface{}, rawInfo map[string]interface{}, keyPrefix string) map[string]interface{} {
	for key, value := range data {
		flattenTransactionValue(keyPrefix+key, value, rawInfo)
	}
	return rawInfo
}

func flattenTransactionValue(key string, value interface{}, rawInfo map[string]interface{}) {
	switch v := value.(type) {
	case map[string]interface{}:
		flattenTransactionInfo(v, rawInfo, key+transactionInfoKeySeparator)
	case []interface{}:
		for i, item := range v {
			flattenTransactionValue(key+transactionInfoKeySeparator+strconv.Itoa(i), item, rawInfo)
		}
	case bool:
		rawInfo[key] = strconv.FormatBool(v)
	default:
		rawInfo[key] = v
	}
}

// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"strings"
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// populate fills a config from the environment and command-line flags.
var populate = gofigure.Gofigure

// Config defines the configuration options for this service.
type Config struct {
	BindAddr               string `env:"BIND_ADDR"                 flag:"bind-addr"                 flagDesc:"Bind address"`
	HostAPIKey             string `env:"HOST_API_KEY"              flag:"host-api-key"              flagDesc:"Key the host platform presents as a bearer token"`
	MongoDBURL             string `env:"MONGODB_URL"               flag:"mongodb-url"               flagDesc:"MongoDB server URL"`
	Database               string `env:"MONGODB_DATABASE"          flag:"mongodb-database"          flagDesc:"MongoDB database for data"`
	MethodConfigCollection string `env:"MONGODB_METHOD_COLLECTION" flag:"mongodb-method-collection" flagDesc:"MongoDB collection holding per payment method configuration"`
	CheckoutCollection     string `env:"MONGODB_CHECKOUT_COLLECTION" flag:"mongodb-checkout-collection" flagDesc:"MongoDB collection holding Buckaroo checkout session state per quote"`
	GroupTxCollection      string `env:"MONGODB_GROUP_TRANSACTION_COLLECTION" flag:"mongodb-group-transaction-collection" flagDesc:"MongoDB collection holding group transactions"`
	CounterCollection      string `env:"MONGODB_COUNTER_COLLECTION" flag:"mongodb-counter-collection" flagDesc:"MongoDB collection holding the order increment id sequence"`
	ActiveMode             int    `env:"BUCKAROO_ACTIVE_MODE"      flag:"buckaroo-active-mode"      flagDesc:"Account level mode: 0 inactive, 1 test, 2 live"`
	PaymentMethods         string `env:"BUCKAROO_PAYMENT_METHODS"  flag:"buckaroo-payment-methods"  flagDesc:"Comma separated payment method codes with a config provider"`
	DeferredPaymentMethods string `env:"BUCKAROO_DEFERRED_METHODS" flag:"buckaroo-deferred-methods" flagDesc:"Comma separated payment method codes settled after delivery"`
	CreditCardMethod       string `env:"BUCKAROO_CREDITCARD_METHOD" flag:"buckaroo-creditcard-method" flagDesc:"Payment method code holding the credit card sort order"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		BindAddr:               ":4045",
		Database:               "buckaroo",
		MethodConfigCollection: "payment_method_config",
		CheckoutCollection:     "checkout_sessions",
		GroupTxCollection:      "group_transactions",
		CounterCollection:      "counters",
		PaymentMethods: "buckaroo_magento2_ideal,buckaroo_magento2_idealprocessing,buckaroo_magento2_creditcard," +
			"buckaroo_magento2_creditcards,buckaroo_magento2_paypal,buckaroo_magento2_transfer," +
			"buckaroo_magento2_sepadirectdebit,buckaroo_magento2_giftcards,buckaroo_magento2_klarna," +
			"buckaroo_magento2_afterpay,buckaroo_magento2_afterpay2,buckaroo_magento2_afterpay20",
		DeferredPaymentMethods: "buckaroo_magento2_afterpay,buckaroo_magento2_afterpay2,buckaroo_magento2_afterpay20",
		CreditCardMethod:       "buckaroo_magento2_creditcard",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	newCfg := DefaultConfig()

	err := populate(newCfg)
	if err != nil {
		return nil, err
	}

	cfg = newCfg
	return cfg, nil
}

// PaymentMethodList returns the configured payment method codes.
func (c Config) PaymentMethodList() []string {
	return splitList(c.PaymentMethods)
}

// DeferredPaymentMethodList returns the payment method codes of the deferred
// payment family.
func (c Config) DeferredPaymentMethodList() []string {
	return splitList(c.DeferredPaymentMethods)
}

func splitList(value string) []string {
	var list []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			list = append(list, item)
		}
	}
	return list
}

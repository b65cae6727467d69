package handlers

import (
	"net/http"

	"github.com/buckaroo/buckaroo-payments.api/config"
	"github.com/buckaroo/buckaroo-payments.api/dao"
	"github.com/buckaroo/buckaroo-payments.api/interceptors"
	"github.com/buckaroo/buckaroo-payments.api/service"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

var creditMemoService *service.CreditMemoService
var methodConfigService *service.MethodConfigService
var modeResolver *service.ModeResolver
var checkoutService *service.CheckoutService

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, cfg config.Config, d dao.DAO) {
	methods := service.NewMethodConfigRegistry(d, cfg.PaymentMethodList())

	creditMemoService = service.NewCreditMemoService(service.NewMethodFamilyRegistry(cfg.DeferredPaymentMethodList()))

	methodConfigService = &service.MethodConfigService{
		DAO:     d,
		Config:  cfg,
		Methods: methods,
	}

	modeResolver = &service.ModeResolver{
		Account: &service.AccountConfig{Config: cfg},
		Methods: methods,
	}

	checkoutService = &service.CheckoutService{DAO: d}

	hostAuth := &interceptors.HostAuthenticationInterceptor{APIKey: cfg.HostAPIKey}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// Every other endpoint is called by the host platform and shares its authentication
	hostRouter := mainRouter.PathPrefix("/").Subrouter()

	hostRouter.HandleFunc("/creditmemos/buckaroo-fee/collect", HandleCollectTotals).Methods("POST").Name("collect-creditmemo-buckaroo-fee")

	hostRouter.HandleFunc("/status-codes", HandleGetStatusCodes).Methods("GET").Name("get-status-codes")
	hostRouter.HandleFunc("/status-codes/{name}", HandleGetStatusCode).Methods("GET").Name("get-status-code")

	hostRouter.HandleFunc("/modes", HandleGetMode).Methods("GET").Name("get-mode")

	hostRouter.HandleFunc("/transactions/additional-info", HandleTransactionAdditionalInfo).Methods("POST").Name("transaction-additional-info")

	hostRouter.HandleFunc("/devices/mobile", HandleIsMobile).Methods("GET").Name("get-device-mobile")

	hostRouter.HandleFunc("/payment-methods/{method}/config", HandleGetMethodConfig).Methods("GET").Name("get-method-config")
	hostRouter.HandleFunc("/payment-methods/{method}/config", HandlePutMethodConfig).Methods("PUT").Name("put-method-config")
	hostRouter.HandleFunc("/creditcards/sort-order", HandleGetCreditCardSortOrder).Methods("GET").Name("get-creditcard-sort-order")

	hostRouter.HandleFunc("/checkout/{quote}/original-transaction-key/{order}", HandleGetOriginalTransactionKey).Methods("GET").Name("get-original-transaction-key")
	hostRouter.HandleFunc("/checkout/{quote}/already-paid/{order}", HandleGetAlreadyPaid).Methods("GET").Name("get-already-paid")
	hostRouter.HandleFunc("/checkout/{quote}/payments/{order}", HandlePutCheckoutPayment).Methods("PUT").Name("put-checkout-payment")
	hostRouter.HandleFunc("/checkout/{quote}/order-id", HandleReserveOrderID).Methods("POST").Name("reserve-order-id")
	hostRouter.HandleFunc("/checkout/{quote}/group-transaction", HandleGetGroupTransaction).Methods("GET").Name("get-group-transaction")
	hostRouter.HandleFunc("/group-transactions/{transaction}", HandlePutGroupTransaction).Methods("PUT").Name("put-group-transaction")

	hostRouter.Use(log.Handler, hostAuth.HostAuthenticationIntercept)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

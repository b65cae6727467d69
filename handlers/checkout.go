package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/buckaroo/buckaroo-payments.api/models"
	"github.com/buckaroo/buckaroo-payments.api/utils"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

// HandleGetOriginalTransactionKey returns the Buckaroo transaction key stored
// for an order of the quote
func HandleGetOriginalTransactionKey(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	quoteID, orderID := vars["quote"], vars["order"]

	key, responseType, err := checkoutService.OriginalTransactionKey(req.Context(), quoteID, orderID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting original transaction key: [%v]", err), log.Data{"service_response_type": responseType.String(), "quote_id": quoteID})
		writeServiceError(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, key, http.StatusOK)
}

// HandleGetAlreadyPaid returns the amount already paid through Buckaroo for
// an order of the quote
func HandleGetAlreadyPaid(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	quoteID, orderID := vars["quote"], vars["order"]

	paid, responseType, err := checkoutService.AlreadyPaid(req.Context(), quoteID, orderID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting already paid amount: [%v]", err), log.Data{"service_response_type": responseType.String(), "quote_id": quoteID})
		writeServiceError(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, paid, http.StatusOK)
}

// HandlePutCheckoutPayment records the transaction key and paid amount of an
// order of the quote
func HandlePutCheckoutPayment(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	vars := mux.Vars(req)
	quoteID, orderID := vars["quote"], vars["order"]

	var payment models.CheckoutPaymentRest
	err := json.NewDecoder(req.Body).Decode(&payment)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	responseType, err := checkoutService.RecordPayment(req.Context(), quoteID, orderID, payment)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error recording checkout payment: [%v]", err), log.Data{"service_response_type": responseType.String(), "quote_id": quoteID})
		writeServiceError(w, req, responseType, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)

	log.InfoR(req, "Successful PUT request for checkout payment", log.Data{"quote_id": quoteID, "order_id": orderID})
}

// HandleReserveOrderID returns the order id reserved for the quote, reserving
// one when the quote has none yet
func HandleReserveOrderID(w http.ResponseWriter, req *http.Request) {
	quoteID := mux.Vars(req)["quote"]

	orderID, responseType, err := checkoutService.OrderID(req.Context(), quoteID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error reserving order id: [%v]", err), log.Data{"service_response_type": responseType.String(), "quote_id": quoteID})
		writeServiceError(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, orderID, http.StatusOK)
}

// HandleGetGroupTransaction reports whether the order of the quote is paid
// with a group transaction
func HandleGetGroupTransaction(w http.ResponseWriter, req *http.Request) {
	quoteID := mux.Vars(req)["quote"]

	status, responseType, err := checkoutService.IsGroupTransaction(req.Context(), quoteID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error checking group transaction: [%v]", err), log.Data{"service_response_type": responseType.String(), "quote_id": quoteID})
		writeServiceError(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, status, http.StatusOK)
}

// HandlePutGroupTransaction stores one transaction of a group transaction
func HandlePutGroupTransaction(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	transactionKey := mux.Vars(req)["transaction"]

	var groupTransactionRequest models.GroupTransactionRest
	err := json.NewDecoder(req.Body).Decode(&groupTransactionRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	groupTransaction, responseType, err := checkoutService.RecordGroupTransaction(req.Context(), transactionKey, groupTransactionRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error storing group transaction: [%v]", err), log.Data{"service_response_type": responseType.String()})
		writeServiceError(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, groupTransaction, http.StatusOK)

	log.InfoR(req, "Successful PUT request for group transaction", log.Data{"transaction_key": transactionKey, "order_id": groupTransaction.OrderID})
}

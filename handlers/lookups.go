package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/buckaroo/buckaroo-payments.api/helpers"
	"github.com/buckaroo/buckaroo-payments.api/mappers"
	"github.com/buckaroo/buckaroo-payments.api/models"
	"github.com/buckaroo/buckaroo-payments.api/service"
	"github.com/buckaroo/buckaroo-payments.api/utils"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

// HandleGetStatusCodes returns the status code table, or the single status
// matching the value query parameter
func HandleGetStatusCodes(w http.ResponseWriter, req *http.Request) {
	value := req.URL.Query().Get("value")
	if value == "" {
		utils.WriteJSONWithStatus(w, req, mappers.MapToStatusCodes(service.StatusCodes()), http.StatusOK)
		return
	}

	code, err := strconv.Atoi(value)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("status code value invalid: [%v]", err))
		utils.WriteErrorWithStatus(w, req, "status code value must be a number", http.StatusBadRequest)
		return
	}

	name, ok := service.StatusByValue(code)
	if !ok {
		log.InfoR(req, "status code value not found", log.Data{"value": code})
		utils.WriteErrorWithStatus(w, req, "status code not found", http.StatusNotFound)
		return
	}

	utils.WriteJSONWithStatus(w, req, models.StatusCodeRest{Name: name, Code: code}, http.StatusOK)
}

// HandleGetStatusCode returns the numeric code of a status name
func HandleGetStatusCode(w http.ResponseWriter, req *http.Request) {
	name := mux.Vars(req)["name"]

	code, ok := service.StatusCode(name)
	if !ok {
		log.InfoR(req, "status code name not found", log.Data{"name": name})
		utils.WriteErrorWithStatus(w, req, "status code not found", http.StatusNotFound)
		return
	}

	utils.WriteJSONWithStatus(w, req, models.StatusCodeRest{Name: name, Code: code}, http.StatusOK)
}

// HandleGetMode returns the active mode of the account or of a payment method
// for a store
func HandleGetMode(w http.ResponseWriter, req *http.Request) {
	paymentMethod := req.URL.Query().Get("payment_method")
	store := helpers.GetStoreCode(req)

	mode, err := modeResolver.Mode(req.Context(), paymentMethod, store)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error resolving mode: [%v]", err), log.Data{"payment_method": paymentMethod, "store": store})
		if errors.Is(err, service.ErrUnknownPaymentMethod) {
			utils.WriteErrorWithStatus(w, req, err.Error(), http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	utils.WriteJSONWithStatus(w, req, models.ModeRest{
		PaymentMethod: paymentMethod,
		Store:         store,
		Mode:          mode,
		Name:          mode.String(),
	}, http.StatusOK)
}

// HandleTransactionAdditionalInfo flattens the posted transaction data for
// display on the host's transaction pages
func HandleTransactionAdditionalInfo(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Keep numbers as posted, large transaction ids do not fit a float64
	requestDecoder := json.NewDecoder(req.Body)
	requestDecoder.UseNumber()

	var data map[string]interface{}
	err := requestDecoder.Decode(&data)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	utils.WriteJSONWithStatus(w, req, service.TransactionAdditionalInfo(data), http.StatusOK)
}

// HandleIsMobile reports whether the browser the request was made for is a
// mobile device
func HandleIsMobile(w http.ResponseWriter, req *http.Request) {
	utils.WriteJSONWithStatus(w, req, models.MobileRest{Mobile: service.IsMobile(req.UserAgent(), req.Header)}, http.StatusOK)
}

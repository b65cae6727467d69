package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/buckaroo/buckaroo-payments.api/helpers"
	"github.com/buckaroo/buckaroo-payments.api/models"
	"github.com/buckaroo/buckaroo-payments.api/service"
	"github.com/buckaroo/buckaroo-payments.api/utils"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

// HandleGetMethodConfig returns the stored configuration of a payment method
func HandleGetMethodConfig(w http.ResponseWriter, req *http.Request) {
	method := mux.Vars(req)["method"]

	methodConfig, responseType, err := methodConfigService.GetMethodConfig(req.Context(), method)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting payment method config: [%v]", err), log.Data{"service_response_type": responseType.String()})
		writeServiceError(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, methodConfig, http.StatusOK)
}

// HandlePutMethodConfig stores the configuration of a payment method
func HandlePutMethodConfig(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	method := mux.Vars(req)["method"]

	var methodConfigRequest models.MethodConfigRest
	err := json.NewDecoder(req.Body).Decode(&methodConfigRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	methodConfig, responseType, err := methodConfigService.UpsertMethodConfig(req.Context(), method, methodConfigRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error storing payment method config: [%v]", err), log.Data{"service_response_type": responseType.String()})
		writeServiceError(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, methodConfig, http.StatusOK)

	log.InfoR(req, "Successful PUT request for payment method config", log.Data{"payment_method": method})
}

// HandleGetCreditCardSortOrder returns the credit card sort order for a store
func HandleGetCreditCardSortOrder(w http.ResponseWriter, req *http.Request) {
	store := helpers.GetStoreCode(req)

	sortOrder, responseType, err := methodConfigService.CreditCardSortOrder(req.Context(), store)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting credit card sort order: [%v]", err), log.Data{"store": store})
		writeServiceError(w, req, responseType, err)
		return
	}

	utils.WriteJSONWithStatus(w, req, map[string]string{"sorted_creditcards": sortOrder}, http.StatusOK)
}

func writeServiceError(w http.ResponseWriter, req *http.Request, responseType service.ResponseType, err error) {
	switch responseType {
	case service.InvalidData:
		utils.WriteErrorWithStatus(w, req, err.Error(), http.StatusBadRequest)
	case service.NotFound:
		utils.WriteErrorWithStatus(w, req, err.Error(), http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

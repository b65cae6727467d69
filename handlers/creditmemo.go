package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/buckaroo/buckaroo-payments.api/models"
	"github.com/buckaroo/buckaroo-payments.api/service"
	"github.com/buckaroo/buckaroo-payments.api/utils"
	"github.com/companieshouse/chs.go/log"
)

// HandleCollectTotals runs the Buckaroo fee total collector for a credit memo
// the host is assembling
func HandleCollectTotals(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var collectTotalsRequest models.CollectTotalsRequest
	err := requestDecoder.Decode(&collectTotalsRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	response, responseType, err := creditMemoService.CollectTotals(collectTotalsRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error collecting credit memo totals: [%v]", err), log.Data{"service_response_type": responseType.String()})
		switch responseType {
		case service.InvalidData:
			utils.WriteErrorWithStatus(w, req, err.Error(), http.StatusBadRequest)
			return
		default:
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSONWithStatus(w, req, response, http.StatusOK)

	log.InfoR(req, "Successful POST request to collect credit memo buckaroo fee", log.Data{
		"order_id":          response.Order.IncrementID,
		"base_buckaroo_fee": response.CreditMemo.BaseBuckarooFee.String(),
	})
}

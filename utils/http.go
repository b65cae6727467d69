package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
)

// ErrorResponse is the body returned to the host when a request cannot be served
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// WriteJSONWithStatus writes data as json with the supplied status. Responses
// are never cached and are written without html escaping, so transaction info
// keys such as "brq_service => name" reach the host unchanged. A value that
// cannot be encoded results in a 500 with an empty body.
func WriteJSONWithStatus(w http.ResponseWriter, r *http.Request, data interface{}, status int) {
	body, err := encodeJSON(data)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error encoding response: [%v]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	if _, err := w.Write(body); err != nil {
		log.ErrorR(r, fmt.Errorf("error writing response: [%v]", err))
	}
}

// WriteErrorWithStatus writes an error response carrying the status and message.
func WriteErrorWithStatus(w http.ResponseWriter, r *http.Request, message string, status int) {
	WriteJSONWithStatus(w, r, ErrorResponse{Status: status, Message: message}, status)
}

func encodeJSON(data interface{}) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

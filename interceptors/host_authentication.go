package interceptors

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"github.com/buckaroo/buckaroo-payments.api/helpers"
	"github.com/companieshouse/chs.go/log"
)

// HostAuthenticationInterceptor checks the host platform presents the
// configured API key. No key configured lets every request through.
type HostAuthenticationInterceptor struct {
	APIKey string
}

// HostAuthenticationIntercept checks the bearer token of the request against
// the configured API key
func (h *HostAuthenticationInterceptor) HostAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.APIKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		token := helpers.GetBearerToken(r)
		if token == "" {
			log.ErrorR(r, fmt.Errorf("host authentication interceptor unauthorised: no bearer token"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(h.APIKey)) != 1 {
			log.ErrorR(r, fmt.Errorf("host authentication interceptor unauthorised: invalid bearer token"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

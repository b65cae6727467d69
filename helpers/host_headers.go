package helpers

import (
	"net/http"
	"strings"
)

const (
	authorizationHeader = "Authorization"
	storeCodeHeader     = "X-Store-Code"
	storeQueryParam     = "store"
	bearerPrefix        = "Bearer "
)

// GetBearerToken returns the bearer token presented by the host, or an empty
// string when there is none.
func GetBearerToken(r *http.Request) string {
	authorization := r.Header.Get(authorizationHeader)
	if !strings.HasPrefix(authorization, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authorization, bearerPrefix))
}

// GetStoreCode returns the store view the request is scoped to. The query
// parameter takes precedence over the header.
func GetStoreCode(r *http.Request) string {
	if store := r.URL.Query().Get(storeQueryParam); store != "" {
		return store
	}
	return r.Header.Get(storeCodeHeader)
}

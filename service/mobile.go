package service

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"
)

var wapAcceptTypes = []string{
	"application/vnd.wap.xhtml+xml",
	"text/vnd.wap.wml",
}

// IsMobile reports whether the browser sending the request headers is a mobile
// device, from its user agent or WAP profile headers.
func IsMobile(userAgent string, headers http.Header) bool {
	if userAgent != "" && useragent.New(userAgent).Mobile() {
		return true
	}

	if headers == nil {
		return false
	}

	if headers.Get("X-Wap-Profile") != "" || headers.Get("Profile") != "" {
		return true
	}

	accept := strings.ToLower(headers.Get("Accept"))
	for _, wapType := range wapAcceptTypes {
		if strings.Contains(accept, wapType) {
			return true
		}
	}

	return false
}

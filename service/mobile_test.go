package service

import (
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const (
	iPhoneUserAgent  = "Mozilla/5.0 (iPhone; CPU iPhone OS 16_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.5 Mobile/15E148 Safari/604.1"
	androidUserAgent = "Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/116.0.0.0 Mobile Safari/537.36"
	desktopUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/116.0.0.0 Safari/537.36"
)

func TestUnitIsMobile(t *testing.T) {
	Convey("Mobile user agents", t, func() {
		So(IsMobile(iPhoneUserAgent, nil), ShouldBeTrue)
		So(IsMobile(androidUserAgent, http.Header{}), ShouldBeTrue)
	})

	Convey("Desktop user agent", t, func() {
		So(IsMobile(desktopUserAgent, http.Header{}), ShouldBeFalse)
	})

	Convey("Empty user agent", t, func() {
		So(IsMobile("", nil), ShouldBeFalse)
	})

	Convey("WAP profile header", t, func() {
		headers := http.Header{}
		headers.Set("X-Wap-Profile", "http://wap.example.com/profile.xml")
		So(IsMobile("", headers), ShouldBeTrue)
	})

	Convey("WAP accept type", t, func() {
		headers := http.Header{}
		headers.Set("Accept", "text/html, application/vnd.wap.xhtml+xml")
		So(IsMobile(desktopUserAgent, headers), ShouldBeTrue)
	})
}

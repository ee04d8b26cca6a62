package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func newFormRequest(path string, form url.Values) *http.Request {
	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return request
}

func withSession(request *http.Request, userID string) *http.Request {
	request.Header.Set("Cookie", sessionCookieName+"="+userID)
	return request
}

func withFlash(request *http.Request, flashValue string) *http.Request {
	cookie := flashCookieName + "=" + flashValue
	if existing := request.Header.Get("Cookie"); existing != "" {
		cookie = existing + "; " + cookie
	}
	request.Header.Set("Cookie", cookie)
	return request
}

func responseCookieValue(cookies []*http.Cookie, name string) string {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}

func readBody(t *testing.T, response *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(body)
}

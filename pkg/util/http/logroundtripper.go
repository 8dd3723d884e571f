package http

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	log "github.com/sirupsen/logrus"
)

const redacted = "/***"

// NewLoggingRoundTripper dumps requests and responses at debug level. Webhook URLs carry
// their secret in the path, so the path never reaches the log.
func NewLoggingRoundTripper(roundTripper http.RoundTripper, entry *log.Entry) http.RoundTripper {
	return &logRoundTripper{roundTripper: roundTripper, entry: entry}
}

type logRoundTripper struct {
	roundTripper http.RoundTripper
	entry        *log.Entry
}

func (rt *logRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	entry := rt.entry.WithField("url", RedactURL(req.URL))
	if entry.Logger.IsLevelEnabled(log.DebugLevel) {
		dumpReq := req.Clone(req.Context())
		dumpReq.URL.Path = redacted
		dumpReq.URL.RawPath = ""
		dumpReq.URL.RawQuery = ""
		// the clone shares the body reader, only a fresh copy may be consumed
		dumpReq.Body = nil
		if req.GetBody != nil {
			if body, err := req.GetBody(); err == nil {
				dumpReq.Body = body
			}
		}
		if info, err := httputil.DumpRequestOut(dumpReq, dumpReq.Body != nil); err == nil {
			entry.Debugf("Sending request: %s", string(info))
		}
	}
	resp, err := rt.roundTripper.RoundTrip(req)
	if resp != nil && entry.Logger.IsLevelEnabled(log.DebugLevel) {
		if info, err := httputil.DumpResponse(resp, true); err == nil {
			entry.Debugf("Received response: %s", string(info))
		}
	}
	return resp, err
}

// RedactURL strips everything after the host.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: redacted}).String()
}

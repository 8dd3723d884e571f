package http

import (
	"crypto/tls"
	"net/http"
	"time"
)

const idleConnTimeout = 90 * time.Second

func NewTransport(insecureSkipVerify bool) *http.Transport {
	transport := &http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		MaxIdleConns:    10,
		IdleConnTimeout: idleConnTimeout,
	}
	if insecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}
	return transport
}

package httpclient

import (
	"net/http"
	"time"
)

// requestTimeout acota cada llamada saliente a las APIs de los proveedores.
// No hay reintentos: una falla es terminal para esa llamada.
const requestTimeout = 10 * time.Second

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type DefaultHTTPClient struct {
	Client *http.Client
}

func NewDefaultHTTPClient() *DefaultHTTPClient {
	return &DefaultHTTPClient{
		Client: &http.Client{Timeout: requestTimeout},
	}
}

func (c *DefaultHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.Client.Do(req)
}

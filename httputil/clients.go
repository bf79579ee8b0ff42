package httputil

import (
	"net/http"
	"time"

	"propdesk/config"
)

type Clients struct {
	API *http.Client // backend REST calls, single attempt, short timeout
}

func NewClients(apiCfg *config.APIConfig) *Clients {
	timeout := apiCfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Clients{
		API: &http.Client{Timeout: timeout},
	}
}

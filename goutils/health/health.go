package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"puck-staking/goutils/settings"
)

// Check reports whether the service is able to serve, nil meaning healthy.
type Check func() error

// Details returns a json-encodable body served next to the check result.
type Details func(ctx context.Context) interface{}

type status struct {
	Status  string      `json:"status"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func HealthCheckHandler(check Check, details Details) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var err error
		if check != nil {
			err = check()
		}

		body := &status{Status: "ok"}
		if details != nil {
			body.Details = details(r.Context())
		}

		if err != nil {
			body.Status = "unavailable"
			body.Error = err.Error()

			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(body)

			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(body)
	})
}

func HealthCheck(config *settings.Healthcheck, check Check, details Details) {
	mux := http.NewServeMux()
	mux.Handle(config.Endpoint, HealthCheckHandler(check, details))

	go func() {
		err := http.ListenAndServe(fmt.Sprintf(":%d", config.Port), mux)
		if err != nil {
			log.WithError(err).Fatal("failed to start health check http server")
		}
	}()

	log.WithField("port", config.Port).Info("started health check http server")
}

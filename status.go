package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPath = "/metrics"
	statusPath = "/status"
)

func newStatusEndpoint(di *Container) *http.Server {
	mux := http.NewServeMux()

	mux.Handle(metricPath, promhttp.HandlerFor(
		di.registry,
		promhttp.HandlerOpts{ //nolint:exhaustruct
			EnableOpenMetrics: true, // to enable Examplars in the export format
		},
	))

	mux.HandleFunc(statusPath, func(w http.ResponseWriter, r *http.Request) {
		status := getSystemStatus(r.Context(), di)

		code := http.StatusOK
		if len(status.Failures) > 0 {
			code = http.StatusInternalServerError
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(code)

		_ = json.NewEncoder(w).Encode(status)
	})

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", di.Config.HTTP.StatusEndpointPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}
}

type systemStatus struct {
	Status          string            `json:"status"`
	Time            time.Time         `json:"time"`
	Uptime          string            `json:"uptime"`
	GitHash         string            `json:"gitHash"`
	ApplicationName string            `json:"applicationName"`
	InstanceName    string            `json:"instanceName"`
	Environment     Environment       `json:"environment"`
	Web             HTTP              `json:"web"`
	Records         map[string]int    `json:"records"`
	Failures        map[string]string `json:"failures"`
}

func getSystemStatus(ctx context.Context, di *Container) systemStatus {
	status := systemStatus{
		Status:          "online",
		Time:            time.Now(),
		Uptime:          time.Since(di.startedAt).Round(time.Second).String(),
		GitHash:         gitHash(),
		ApplicationName: di.Config.ApplicationName,
		InstanceName:    di.Config.InstanceName,
		Environment:     di.Config.Environment,
		Web:             di.Config.HTTP,
		Records:         map[string]int{},
		Failures:        map[string]string{},
	}

	di.mu.Lock()
	counters := maps.Clone(di.counters)
	di.mu.Unlock()

	for _, name := range slices.Sorted(maps.Keys(counters)) {
		count, err := counters[name](ctx)
		if err != nil {
			status.Failures[name] = err.Error()
			status.Status = "degraded"

			continue
		}

		status.Records[name] = count
	}

	return status
}

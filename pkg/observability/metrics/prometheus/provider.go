/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/sigapi/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once    //nolint:gochecknoglobals
	instance   *PromMetrics //nolint:gochecknoglobals
)

type promProvider struct {
	echo *echo.Echo
	addr string
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider. The /metrics endpoint is
// registered on the given echo instance and, if addr is not empty, served on addr until Destroy is called.
func NewPrometheusProvider(e *echo.Echo, addr string) metrics.Provider {
	return &promProvider{echo: e, addr: addr}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	h := NewHandler()

	pp.echo.HideBanner = true
	pp.echo.HidePort = true
	pp.echo.Add(h.Method(), h.Path(), echo.WrapHandler(h.Handler()))

	if pp.addr == "" {
		return nil
	}

	go func() {
		if err := pp.echo.Start(pp.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics HTTP server stopped", log.WithError(err))
		}
	}()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.addr == "" {
		return nil
	}

	return pp.echo.Shutdown(context.Background())
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the signature service client.
type PromMetrics struct {
	createSignatureTime  prometheus.Histogram
	assignIdentifierTime prometheus.Histogram
	getSignatureTime     prometheus.Histogram
	httpRequestTime      *prometheus.HistogramVec
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() *PromMetrics {
	pm := &PromMetrics{
		createSignatureTime:  newCreateSignatureTime(),
		assignIdentifierTime: newAssignIdentifierTime(),
		getSignatureTime:     newGetSignatureTime(),
		httpRequestTime:      newHTTPRequestTime(),
	}

	registerMetrics(pm)

	return pm
}

// CreateSignatureTime records the time for the create signature call.
func (pm *PromMetrics) CreateSignatureTime(value time.Duration) {
	pm.createSignatureTime.Observe(value.Seconds())

	logger.Debug("create signature time", log.WithDuration(value))
}

// AssignIdentifierTime records the time for the assign identifier call.
func (pm *PromMetrics) AssignIdentifierTime(value time.Duration) {
	pm.assignIdentifierTime.Observe(value.Seconds())

	logger.Debug("assign identifier time", log.WithDuration(value))
}

// GetSignatureTime records the time for the get signature call.
func (pm *PromMetrics) GetSignatureTime(value time.Duration) {
	pm.getSignatureTime.Observe(value.Seconds())

	logger.Debug("get signature time", log.WithDuration(value))
}

// InstrumentHTTPTransport wraps transport to observe request durations by status code and method.
func (pm *PromMetrics) InstrumentHTTPTransport(
	clientID metrics.ClientID,
	transport http.RoundTripper,
) http.RoundTripper {
	return promhttp.InstrumentRoundTripperDuration(
		pm.httpRequestTime.MustCurryWith(prometheus.Labels{metrics.ClientHTTPRequestClientLabel: string(clientID)}),
		transport,
	)
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.createSignatureTime, pm.assignIdentifierTime, pm.getSignatureTime, pm.httpRequestTime,
	)
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newCreateSignatureTime() prometheus.Histogram {
	return newHistogram(
		metrics.Client, metrics.ClientCreateSignatureMetric,
		"The time (in seconds) it takes to create a signature.",
		nil,
	)
}

func newAssignIdentifierTime() prometheus.Histogram {
	return newHistogram(
		metrics.Client, metrics.ClientAssignIdentifierMetric,
		"The time (in seconds) it takes to assign an identifier to a signature.",
		nil,
	)
}

func newGetSignatureTime() prometheus.Histogram {
	return newHistogram(
		metrics.Client, metrics.ClientGetSignatureMetric,
		"The time (in seconds) it takes to fetch a signature by identifier.",
		nil,
	)
}

func newHTTPRequestTime() *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: metrics.Client,
		Name:      metrics.ClientHTTPRequestTimeMetric,
		Help:      "The time (in seconds) of outgoing HTTP requests.",
	}, []string{metrics.ClientHTTPRequestClientLabel, "code", "method"})
}

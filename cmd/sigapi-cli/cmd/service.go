/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/henvic/httpretty"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	tlsutils "github.com/trustbloc/cmdutil-go/pkg/utils/tls"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/trustbloc/sigapi/cmd/common"
	"github.com/trustbloc/sigapi/internal/logfields"
	"github.com/trustbloc/sigapi/pkg/observability/metrics"
	"github.com/trustbloc/sigapi/pkg/observability/metrics/noop"
	"github.com/trustbloc/sigapi/pkg/observability/metrics/prometheus"
	"github.com/trustbloc/sigapi/pkg/observability/tracing"
	tracingwrapper "github.com/trustbloc/sigapi/pkg/observability/tracing/wrappers/signatureapi"
	"github.com/trustbloc/sigapi/pkg/signatureapi"
)

type service struct {
	signatureapi.ServiceInterface
	closers []func()
}

// Close releases the tracer and metrics providers in reverse order of creation.
func (s *service) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func initService(cmd *cobra.Command) (*service, error) {
	params, err := getConnectionParameters(cmd)
	if err != nil {
		return nil, err
	}

	if params.logLevel != "" {
		common.SetDefaultLogLevel(logger, params.logLevel)
	}

	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}

	// Nil RootCAs falls back to the host root set.
	if params.tlsParams.systemCertPool || len(params.tlsParams.caCerts) > 0 {
		tlsConfig.RootCAs, err = tlsutils.GetCertPool(params.tlsParams.systemCertPool, params.tlsParams.caCerts)
		if err != nil {
			return nil, fmt.Errorf("get cert pool: %w", err)
		}
	}

	svc := &service{}

	m, err := initMetrics(svc, params)
	if err != nil {
		return nil, err
	}

	shutdownTracer, tracer, err := tracing.Initialize(params.tracingProvider, tracingServiceName)
	if err != nil {
		svc.Close()

		return nil, fmt.Errorf("initialize tracing: %w", err)
	}

	svc.closers = append(svc.closers, shutdownTracer)

	var transport http.RoundTripper = &http.Transport{
		Proxy:           http.ProxyFromEnvironment,
		TLSClientConfig: tlsConfig,
	}

	if params.httpTrace {
		httpLogger := &httpretty.Logger{
			RequestHeader:   true,
			RequestBody:     true,
			ResponseHeader:  true,
			ResponseBody:    true,
			SkipRequestInfo: true,
			Formatters:      []httpretty.Formatter{&httpretty.JSONFormatter{}},
			MaxResponseBody: 1e+7,
		}

		httpLogger.SetOutput(cmd.ErrOrStderr())

		transport = httpLogger.RoundTripper(transport)
	}

	httpClient := &http.Client{
		Timeout:   params.timeout,
		Transport: otelhttp.NewTransport(m.InstrumentHTTPTransport(metrics.ClientSignatureAPI, transport)),
	}

	client, err := signatureapi.NewClient(&signatureapi.Config{
		BaseURL:     params.baseURL,
		Credentials: params.credentials,
		AuthType:    params.authType,
		Timeout:     params.timeout,
	},
		signatureapi.WithHTTPClient(httpClient),
		signatureapi.WithMetrics(m),
	)
	if err != nil {
		svc.Close()

		return nil, err
	}

	logger.Debug("Signature service client initialized",
		log.WithURL(params.baseURL),
		logfields.WithAuthType(string(params.authType)),
		logfields.WithTimeout(params.timeout),
		logfields.WithTracingProvider(params.tracingProvider),
		logfields.WithMetricsProvider(params.metricsProvider),
	)

	svc.ServiceInterface = tracingwrapper.Wrap(client, tracer)

	return svc, nil
}

func initMetrics(svc *service, params *connectionParameters) (metrics.Metrics, error) {
	if params.metricsProvider != prometheusMetricsProvider {
		return noop.GetMetrics(), nil
	}

	provider := prometheus.NewPrometheusProvider(echo.New(), params.promHTTPURL)

	if err := provider.Create(); err != nil {
		return nil, fmt.Errorf("create metrics provider: %w", err)
	}

	svc.closers = append(svc.closers, func() {
		if err := provider.Destroy(); err != nil {
			logger.Warn("Failed to destroy metrics provider", log.WithError(err))
		}
	})

	return provider.Metrics(), nil
}

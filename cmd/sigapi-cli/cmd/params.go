/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/trustbloc/sigapi/cmd/common"
	"github.com/trustbloc/sigapi/pkg/observability/tracing"
	"github.com/trustbloc/sigapi/pkg/signatureapi"
)

const (
	commonEnvVarUsageText = " Alternatively, this can be set with the following environment variable: "

	baseURLFlagName      = "base-url"
	baseURLFlagShorthand = "u"
	baseURLFlagUsage     = "Signatures endpoint of the signature service, e.g. https://host/api/v1/signatures." +
		commonEnvVarUsageText + baseURLEnvKey
	baseURLEnvKey = "SIGAPI_BASE_URL"

	authIDFlagName  = "auth-id"
	authIDFlagUsage = "Identifier used for Basic authentication." + commonEnvVarUsageText + authIDEnvKey
	authIDEnvKey    = "SIGAPI_AUTH_ID"

	authSecretFlagName  = "auth-secret"
	authSecretFlagUsage = "Secret used for Basic authentication." + commonEnvVarUsageText + authSecretEnvKey
	authSecretEnvKey    = "SIGAPI_AUTH_SECRET" //nolint:gosec

	authTypeFlagName  = "auth-type"
	authTypeFlagUsage = "Where the credentials are sent. Possible values [header] [url]. Defaults to header." +
		commonEnvVarUsageText + authTypeEnvKey
	authTypeEnvKey = "SIGAPI_AUTH_TYPE"

	timeoutFlagName  = "timeout"
	timeoutFlagUsage = "Request timeout, e.g. 10s. Defaults to 30s." + commonEnvVarUsageText + timeoutEnvKey
	timeoutEnvKey    = "SIGAPI_TIMEOUT"

	tlsSystemCertPoolFlagName  = "tls-systemcertpool"
	tlsSystemCertPoolFlagUsage = "Use system certificate pool." +
		" Possible values [true] [false]. Defaults to false if not set." + commonEnvVarUsageText + tlsSystemCertPoolEnvKey
	tlsSystemCertPoolEnvKey = "SIGAPI_TLS_SYSTEMCERTPOOL"

	tlsCACertsFlagName  = "tls-cacerts"
	tlsCACertsFlagUsage = "Comma-Separated list of ca certs path." + commonEnvVarUsageText + tlsCACertsEnvKey
	tlsCACertsEnvKey    = "SIGAPI_TLS_CACERTS"

	tracingProviderFlagName  = "tracing-provider"
	tracingProviderFlagUsage = "Tracing exporter. Possible values [STDOUT] [DEFAULT]. Tracing is off if not set." +
		commonEnvVarUsageText + tracingProviderEnvKey
	tracingProviderEnvKey = "SIGAPI_TRACING_PROVIDER"

	metricsProviderFlagName  = "metrics-provider-name"
	metricsProviderFlagUsage = "Metrics provider name. Possible values [prometheus]. Metrics are off if not set." +
		commonEnvVarUsageText + metricsProviderEnvKey
	metricsProviderEnvKey = "SIGAPI_METRICS_PROVIDER_NAME"

	promHTTPURLFlagName  = "prom-http-url"
	promHTTPURLFlagUsage = "Address to serve /metrics on while the command runs, e.g. 0.0.0.0:48127." +
		commonEnvVarUsageText + promHTTPURLEnvKey
	promHTTPURLEnvKey = "SIGAPI_PROM_HTTP_URL"

	httpTraceFlagName  = "http-trace"
	httpTraceFlagUsage = "Dump HTTP requests and responses to stderr. Possible values [true] [false]." +
		commonEnvVarUsageText + httpTraceEnvKey
	httpTraceEnvKey = "SIGAPI_HTTP_TRACE"

	prometheusMetricsProvider = "prometheus"
	defaultTimeout            = 30 * time.Second
	tracingServiceName        = "sigapi-cli"
)

type tlsParameters struct {
	systemCertPool bool
	caCerts        []string
}

type connectionParameters struct {
	baseURL         string
	credentials     signatureapi.Credentials
	authType        signatureapi.AuthType
	timeout         time.Duration
	tlsParams       *tlsParameters
	tracingProvider tracing.SpanExporterType
	metricsProvider string
	promHTTPURL     string
	httpTrace       bool
	logLevel        string
}

func createConnectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(baseURLFlagName, baseURLFlagShorthand, "", baseURLFlagUsage)
	cmd.Flags().String(authIDFlagName, "", authIDFlagUsage)
	cmd.Flags().String(authSecretFlagName, "", authSecretFlagUsage)
	cmd.Flags().String(authTypeFlagName, "", authTypeFlagUsage)
	cmd.Flags().String(timeoutFlagName, "", timeoutFlagUsage)
	cmd.Flags().String(tlsSystemCertPoolFlagName, "", tlsSystemCertPoolFlagUsage)
	cmd.Flags().StringSlice(tlsCACertsFlagName, []string{}, tlsCACertsFlagUsage)
	cmd.Flags().String(tracingProviderFlagName, "", tracingProviderFlagUsage)
	cmd.Flags().String(metricsProviderFlagName, "", metricsProviderFlagUsage)
	cmd.Flags().String(promHTTPURLFlagName, "", promHTTPURLFlagUsage)
	cmd.Flags().String(httpTraceFlagName, "", httpTraceFlagUsage)
	cmd.Flags().StringP(common.LogLevelFlagName, common.LogLevelFlagShorthand, "", common.LogLevelPrefixFlagUsage)
}

func getConnectionParameters(cmd *cobra.Command) (*connectionParameters, error) {
	baseURL, err := cmdutils.GetUserSetVarFromString(cmd, baseURLFlagName, baseURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	authID, err := cmdutils.GetUserSetVarFromString(cmd, authIDFlagName, authIDEnvKey, false)
	if err != nil {
		return nil, err
	}

	authSecret, err := cmdutils.GetUserSetVarFromString(cmd, authSecretFlagName, authSecretEnvKey, false)
	if err != nil {
		return nil, err
	}

	authType, err := signatureapi.ParseAuthType(
		cmdutils.GetUserSetOptionalVarFromString(cmd, authTypeFlagName, authTypeEnvKey))
	if err != nil {
		return nil, err
	}

	timeout, err := getDuration(cmd, timeoutFlagName, timeoutEnvKey, defaultTimeout)
	if err != nil {
		return nil, err
	}

	tlsParams, err := getTLS(cmd)
	if err != nil {
		return nil, err
	}

	tracingProvider := cmdutils.GetUserSetOptionalVarFromString(cmd, tracingProviderFlagName, tracingProviderEnvKey)
	if !tracing.IsExportedSupported(tracingProvider) {
		return nil, fmt.Errorf("unsupported tracing provider: %s", tracingProvider)
	}

	metricsProvider := cmdutils.GetUserSetOptionalVarFromString(cmd, metricsProviderFlagName, metricsProviderEnvKey)
	if metricsProvider != "" && metricsProvider != prometheusMetricsProvider {
		return nil, fmt.Errorf("unsupported metrics provider: %s", metricsProvider)
	}

	httpTrace, err := getBool(cmd, httpTraceFlagName, httpTraceEnvKey)
	if err != nil {
		return nil, err
	}

	return &connectionParameters{
		baseURL: baseURL,
		credentials: signatureapi.Credentials{
			ID:     authID,
			Secret: authSecret,
		},
		authType:        authType,
		timeout:         timeout,
		tlsParams:       tlsParams,
		tracingProvider: tracingProvider,
		metricsProvider: metricsProvider,
		promHTTPURL:     cmdutils.GetUserSetOptionalVarFromString(cmd, promHTTPURLFlagName, promHTTPURLEnvKey),
		httpTrace:       httpTrace,
		logLevel:        cmdutils.GetUserSetOptionalVarFromString(cmd, common.LogLevelFlagName, common.LogLevelEnvKey),
	}, nil
}

func getTLS(cmd *cobra.Command) (*tlsParameters, error) {
	tlsSystemCertPool, err := getBool(cmd, tlsSystemCertPoolFlagName, tlsSystemCertPoolEnvKey)
	if err != nil {
		return nil, err
	}

	tlsCACerts := cmdutils.GetUserSetOptionalVarFromArrayString(cmd, tlsCACertsFlagName, tlsCACertsEnvKey)

	return &tlsParameters{
		systemCertPool: tlsSystemCertPool,
		caCerts:        tlsCACerts,
	}, nil
}

func getBool(cmd *cobra.Command, flagName, envKey string) (bool, error) {
	value := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey)
	if value == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid value for %s [%s]: %w", flagName, value, err)
	}

	return b, nil
}

func getDuration(cmd *cobra.Command, flagName, envKey string,
	defaultDuration time.Duration) (time.Duration, error) {
	timeoutStr, err := cmdutils.GetUserSetVarFromString(cmd, flagName, envKey, true)
	if err != nil {
		return -1, err
	}

	if timeoutStr == "" {
		return defaultDuration, nil
	}

	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return -1, fmt.Errorf("invalid value [%s]: %w", timeoutStr, err)
	}

	return timeout, nil
}

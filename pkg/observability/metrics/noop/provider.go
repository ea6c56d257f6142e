/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"net/http"
	"time"

	"github.com/trustbloc/sigapi/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the NoMetrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) CreateSignatureTime(_ time.Duration)  {}
func (n *NoMetrics) AssignIdentifierTime(_ time.Duration) {}
func (n *NoMetrics) GetSignatureTime(_ time.Duration)     {}

// InstrumentHTTPTransport returns the given transport unchanged.
func (n *NoMetrics) InstrumentHTTPTransport(_ metrics.ClientID, transport http.RoundTripper) http.RoundTripper {
	return transport
}

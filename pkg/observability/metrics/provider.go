/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider", log.WithStdOut(os.Stderr))

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "sigapi"

	// Client signature service client operations.
	Client                       = "client"
	ClientCreateSignatureMetric  = "createSignature_seconds"
	ClientAssignIdentifierMetric = "assignIdentifier_seconds"
	ClientGetSignatureMetric     = "getSignature_seconds"
	ClientHTTPRequestTimeMetric  = "http_request_seconds"
	ClientHTTPRequestClientLabel = "client"
)

// ClientID identifies an instrumented HTTP client.
type ClientID string

const (
	ClientSignatureAPI ClientID = "signature-api"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
type Metrics interface {
	CreateSignatureTime(value time.Duration)
	AssignIdentifierTime(value time.Duration)
	GetSignatureTime(value time.Duration)
	InstrumentHTTPTransport(clientID ClientID, transport http.RoundTripper) http.RoundTripper
}

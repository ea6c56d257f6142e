/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldAuthType        = "authType"
	FieldCommand         = "command"
	FieldHashAlgorithm   = "hashAlgorithm"
	FieldHTTPMethod      = "httpMethod"
	FieldMetricsProvider = "metricsProvider"
	FieldRequest         = "request"
	FieldSignatureID     = "signatureID"
	FieldTimeout         = "timeout"
	FieldTracingProvider = "tracingProvider"
	FieldUserLogLevel    = "userLogLevel"
)

// WithAuthType sets the AuthType field.
func WithAuthType(authType string) zap.Field {
	return zap.String(FieldAuthType, authType)
}

// WithCommand sets the Command field.
func WithCommand(command string) zap.Field {
	return zap.String(FieldCommand, command)
}

// WithHashAlgorithm sets the HashAlgorithm field.
func WithHashAlgorithm(algorithm string) zap.Field {
	return zap.String(FieldHashAlgorithm, algorithm)
}

// WithHTTPMethod sets the HTTPMethod field.
func WithHTTPMethod(method string) zap.Field {
	return zap.String(FieldHTTPMethod, method)
}

// WithMetricsProvider sets the MetricsProvider field.
func WithMetricsProvider(provider string) zap.Field {
	return zap.String(FieldMetricsProvider, provider)
}

// WithRequest sets the Request field.
func WithRequest(request interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldRequest, request))
}

// WithSignatureID sets the SignatureID field.
func WithSignatureID(id string) zap.Field {
	return zap.String(FieldSignatureID, id)
}

// WithTimeout sets the Timeout field.
func WithTimeout(timeout time.Duration) zap.Field {
	return zap.Duration(FieldTimeout, timeout)
}

// WithTracingProvider sets the TracingProvider field.
func WithTracingProvider(provider string) zap.Field {
	return zap.String(FieldTracingProvider, provider)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(logLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, logLevel)
}

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}

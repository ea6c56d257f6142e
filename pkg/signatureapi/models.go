/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signatureapi

import (
	"encoding/json"
)

// DefaultHashAlgorithm is the data hash algorithm used when none is given.
const DefaultHashAlgorithm = "SHA-256"

// Credentials is the identifier and secret pair used for HTTP Basic authentication.
type Credentials struct {
	ID     string
	Secret string
}

// DataHash is the fingerprint of external data. Value is the base64-encoded digest.
type DataHash struct {
	Algorithm string `json:"algorithm"`
	Value     string `json:"value"`
}

// SignatureRequest is the body of a create signature call.
type SignatureRequest struct {
	DataHash DataHash       `json:"dataHash"`
	Metadata map[string]any `json:"metadata"`
	Level    int            `json:"level"`
}

// AssignRequest is the body of an assign identifier call. Signature is forwarded
// exactly as it was received from the create call.
type AssignRequest struct {
	Metadata  map[string]any  `json:"metadata"`
	Signature json.RawMessage `json:"signature"`
}

/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signatureapi

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

const (
	fieldSignature = "signature"
	fieldID        = "id"
)

// Document is a JSON document returned by the signature service. The shape is defined
// by the service, so fields are read with gjson paths.
type Document json.RawMessage

// Signature returns the raw JSON of the "signature" field or nil if it is absent.
func (d Document) Signature() json.RawMessage {
	r := gjson.GetBytes(d, fieldSignature)
	if !r.Exists() {
		return nil
	}

	return json.RawMessage(r.Raw)
}

// ID returns the "id" field.
func (d Document) ID() string {
	return gjson.GetBytes(d, fieldID).String()
}

// Get returns the value at the given gjson path.
func (d Document) Get(path string) gjson.Result {
	return gjson.GetBytes(d, path)
}

func (d Document) String() string {
	return string(d)
}

// MarshalJSON returns the document unchanged.
func (d Document) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}

	return d, nil
}

// UnmarshalJSON stores a copy of b.
func (d *Document) UnmarshalJSON(b []byte) error {
	*d = append((*d)[0:0], b...)

	return nil
}

/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signatureapi_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/sigapi/pkg/signatureapi"
)

func TestDocument(t *testing.T) {
	doc := signatureapi.Document(`{"id":"X","signature":{"hash":"abc","level":0},"metadata":{}}`)

	assert.Equal(t, "X", doc.ID())
	assert.Equal(t, `{"hash":"abc","level":0}`, string(doc.Signature()))
	assert.Equal(t, "abc", doc.Get("signature.hash").String())
	assert.False(t, doc.Get("signature.missing").Exists())
	assert.Equal(t, string(doc), doc.String())

	t.Run("missing fields", func(t *testing.T) {
		empty := signatureapi.Document(`{}`)

		assert.Nil(t, empty.Signature())
		assert.Empty(t, empty.ID())
	})

	t.Run("string signature", func(t *testing.T) {
		assert.Equal(t, `"S1"`, string(signatureapi.Document(`{"signature":"S1"}`).Signature()))
	})
}

func TestDocument_JSON(t *testing.T) {
	var wrapper struct {
		Record signatureapi.Document `json:"record"`
		Other  signatureapi.Document `json:"other"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"record":{"id":"X"}}`), &wrapper))
	assert.Equal(t, "X", wrapper.Record.ID())
	assert.Nil(t, wrapper.Other)

	b, err := json.Marshal(wrapper)
	require.NoError(t, err)
	assert.JSONEq(t, `{"record":{"id":"X"},"other":null}`, string(b))
}

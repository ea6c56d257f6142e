/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signatureapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/sigapi/internal/logfields"
)

const contentTypeJSON = "application/json"

func (c *Client) send(
	ctx context.Context,
	method string,
	endpoint string,
	request interface{},
) (Document, error) {
	body := io.Reader(http.NoBody)

	if request != nil {
		var buf bytes.Buffer

		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)

		if err := enc.Encode(request); err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}

		body = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}

	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)

	c.auth.authenticate(req)

	logger.Debugc(ctx, "sending request to signature service",
		logfields.WithHTTPMethod(method), log.WithURL(endpoint))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Method: method, URL: endpoint, Err: err}
	}

	var respBody []byte

	if resp.Body != nil {
		defer func() {
			if closeErr := resp.Body.Close(); closeErr != nil {
				logger.Warn("failed to close response body", log.WithError(closeErr))
			}
		}()

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, &NetworkError{Method: method, URL: endpoint, Err: fmt.Errorf("read response body: %w", err)}
		}
	}

	logger.Debugc(ctx, "received response from signature service",
		logfields.WithHTTPMethod(method), log.WithURL(endpoint), log.WithHTTPStatus(resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: respBody}
	}

	var doc Document

	if err = json.Unmarshal(respBody, &doc); err != nil {
		return nil, &DecodeError{Body: respBody, Err: err}
	}

	return doc, nil
}

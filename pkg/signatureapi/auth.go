/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signatureapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// AuthType selects where the Basic credentials are placed.
type AuthType string

const (
	// AuthTypeHeader sends an "Authorization: Basic" header. This is the default.
	AuthTypeHeader AuthType = "header"
	// AuthTypeURL embeds the credentials in the user-info part of the request URL.
	AuthTypeURL AuthType = "url"
)

// ParseAuthType returns the AuthType for s. Empty string selects AuthTypeHeader.
func ParseAuthType(s string) (AuthType, error) {
	switch AuthType(strings.ToLower(strings.TrimSpace(s))) {
	case "", AuthTypeHeader:
		return AuthTypeHeader, nil
	case AuthTypeURL:
		return AuthTypeURL, nil
	default:
		return "", fmt.Errorf("unsupported auth type: %q", s)
	}
}

type authenticator interface {
	authenticate(req *http.Request)
}

type headerAuth struct {
	credentials Credentials
}

func (a *headerAuth) authenticate(req *http.Request) {
	req.SetBasicAuth(a.credentials.ID, a.credentials.Secret)
}

// urlAuth relies on net/http deriving the Basic header from URL user-info.
type urlAuth struct {
	credentials Credentials
}

func (a *urlAuth) authenticate(req *http.Request) {
	req.URL.User = url.UserPassword(a.credentials.ID, a.credentials.Secret)
}

func newAuthenticator(authType AuthType, credentials Credentials) (authenticator, error) {
	t, err := ParseAuthType(string(authType))
	if err != nil {
		return nil, err
	}

	if t == AuthTypeURL {
		return &urlAuth{credentials: credentials}, nil
	}

	return &headerAuth{credentials: credentials}, nil
}

/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package signatureservice is an in-memory stand-in for the remote signature service.
package signatureservice

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// BasePath is the path of the signatures collection.
const BasePath = "/api/v1/signatures"

type dataHash struct {
	Algorithm string `json:"algorithm"`
	Value     string `json:"value"`
}

type createRequest struct {
	DataHash *dataHash      `json:"dataHash"`
	Metadata map[string]any `json:"metadata"`
	Level    *int           `json:"level"`
}

type assignRequest struct {
	Metadata  map[string]any  `json:"metadata"`
	Signature json.RawMessage `json:"signature"`
}

type signature struct {
	Algorithm string `json:"algorithm"`
	Hash      string `json:"hash"`
	Level     int    `json:"level"`
	Time      string `json:"time"`
	Nonce     string `json:"nonce"`
}

type record struct {
	ID        string          `json:"id"`
	Metadata  map[string]any  `json:"metadata"`
	Signature json.RawMessage `json:"signature"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Service emulates the create, assign and get endpoints with Basic authentication.
type Service struct {
	echo    *echo.Echo
	mutex   sync.RWMutex
	records map[string]*record
	issued  map[string]struct{}

	username string
	password string
}

// New returns a Service accepting the given credentials.
func New(username, password string) *Service {
	s := &Service{
		echo:     echo.New(),
		records:  make(map[string]*record),
		issued:   make(map[string]struct{}),
		username: username,
		password: password,
	}

	g := s.echo.Group(BasePath, middleware.BasicAuth(s.validateCredentials))

	g.POST("", s.createSignature)
	g.PUT("", s.assignIdentifier)
	g.GET("/:id", s.getSignature)

	return s
}

// Handler returns the HTTP handler serving the signatures API.
func (s *Service) Handler() http.Handler {
	return s.echo
}

// Len returns the number of stored records.
func (s *Service) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.records)
}

func (s *Service) validateCredentials(username, password string, _ echo.Context) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1 &&
		subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1, nil
}

func (s *Service) createSignature(c echo.Context) error {
	var req createRequest

	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &errorResponse{Error: "invalid request body"})
	}

	if req.DataHash == nil || req.DataHash.Value == "" || req.DataHash.Algorithm == "" {
		return c.JSON(http.StatusBadRequest, &errorResponse{Error: "dataHash is required"})
	}

	if req.Metadata == nil || req.Level == nil {
		return c.JSON(http.StatusBadRequest, &errorResponse{Error: "metadata and level are required"})
	}

	sig := &signature{
		Algorithm: req.DataHash.Algorithm,
		Hash:      req.DataHash.Value,
		Level:     *req.Level,
		Time:      time.Now().UTC().Format(time.RFC3339),
		Nonce:     uuid.NewString(),
	}

	raw, err := json.Marshal(sig)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	s.issued[string(raw)] = struct{}{}
	s.mutex.Unlock()

	return c.JSON(http.StatusOK, map[string]json.RawMessage{"signature": raw})
}

func (s *Service) assignIdentifier(c echo.Context) error {
	var req assignRequest

	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &errorResponse{Error: "invalid request body"})
	}

	if req.Metadata == nil || len(req.Signature) == 0 {
		return c.JSON(http.StatusBadRequest, &errorResponse{Error: "metadata and signature are required"})
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Only signatures handed out by createSignature are accepted, byte for byte.
	if _, ok := s.issued[string(req.Signature)]; !ok {
		return c.JSON(http.StatusUnprocessableEntity, &errorResponse{Error: "unknown signature"})
	}

	rec := &record{
		ID:        uuid.NewString(),
		Metadata:  req.Metadata,
		Signature: req.Signature,
	}

	s.records[rec.ID] = rec

	return c.JSON(http.StatusOK, rec)
}

func (s *Service) getSignature(c echo.Context) error {
	s.mutex.RLock()
	rec, ok := s.records[c.Param("id")]
	s.mutex.RUnlock()

	if !ok {
		return c.JSON(http.StatusNotFound, &errorResponse{Error: "signature not found"})
	}

	return c.JSON(http.StatusOK, rec)
}

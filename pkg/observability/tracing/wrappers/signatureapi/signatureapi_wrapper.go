/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package signatureapi . Service

package signatureapi

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/sigapi/pkg/observability/tracing/attributeutil"
	"github.com/trustbloc/sigapi/pkg/signatureapi"
)

var _ Service = (*Wrapper)(nil) // make sure Wrapper implements signatureapi.ServiceInterface

type Service signatureapi.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) CreateSignature(ctx context.Context, hash string) (signatureapi.Document, error) {
	ctx, span := w.tracer.Start(ctx, "signatureapi.CreateSignature")
	defer span.End()

	span.SetAttributes(attribute.String("hash", hash))

	doc, err := w.svc.CreateSignature(ctx, hash)
	if err != nil {
		recordError(span, err)

		return nil, err
	}

	return doc, nil
}

func (w *Wrapper) SubmitSignatureRequest(
	ctx context.Context,
	req *signatureapi.SignatureRequest,
) (signatureapi.Document, error) {
	ctx, span := w.tracer.Start(ctx, "signatureapi.SubmitSignatureRequest")
	defer span.End()

	span.SetAttributes(attributeutil.JSON("request", req))

	doc, err := w.svc.SubmitSignatureRequest(ctx, req)
	if err != nil {
		recordError(span, err)

		return nil, err
	}

	return doc, nil
}

func (w *Wrapper) AssignIdentifier(ctx context.Context, signature json.RawMessage) (signatureapi.Document, error) {
	ctx, span := w.tracer.Start(ctx, "signatureapi.AssignIdentifier")
	defer span.End()

	span.SetAttributes(attribute.Int("signature_size", len(signature)))

	doc, err := w.svc.AssignIdentifier(ctx, signature)
	if err != nil {
		recordError(span, err)

		return nil, err
	}

	span.SetAttributes(attribute.String("signature_id", doc.ID()))

	return doc, nil
}

func (w *Wrapper) GetSignature(ctx context.Context, id string) (signatureapi.Document, error) {
	ctx, span := w.tracer.Start(ctx, "signatureapi.GetSignature")
	defer span.End()

	span.SetAttributes(attribute.String("signature_id", id))

	doc, err := w.svc.GetSignature(ctx, id)
	if err != nil {
		recordError(span, err)

		return nil, err
	}

	span.SetAttributes(attributeutil.RawJSON("record", doc, attributeutil.WithRedacted("signature")))

	return doc, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

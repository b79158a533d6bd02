package driven

import (
	"context"

	"github.com/custodia-labs/hyperless/internal/core/domain"
)

// NormaliserRegistry dispatches a raw document to the highest priority
// normaliser for its MIME type.
type NormaliserRegistry interface {
	Register(normaliser Normaliser)

	// Normalise fails with domain.ErrUnsupportedType when no registered
	// normaliser claims raw.MIMEType.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)

	SupportedMIMETypes() []string
}

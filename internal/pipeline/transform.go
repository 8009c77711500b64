package pipeline

import (
	"context"
	"fmt"

	"github.com/couchcryptid/starseer/internal/domain"
)

// BodyTransformer implements Transformer with the fixed-width catalog parser.
type BodyTransformer struct{}

// NewTransformer creates a BodyTransformer.
func NewTransformer() *BodyTransformer {
	return &BodyTransformer{}
}

func (t *BodyTransformer) Transform(_ context.Context, raw domain.RawRecord) (domain.CelestialBody, error) {
	body, err := domain.ParseBody(raw.Text)
	if err != nil {
		return domain.CelestialBody{}, fmt.Errorf("line %d: %w", raw.Line, err)
	}
	return body, nil
}

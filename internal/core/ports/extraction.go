package ports

import (
	"context"

	"github.com/cras-office/agenda/internal/core/domain"
)

// DocumentExtractor reads identity fields from a document photo.
type DocumentExtractor interface {
	Extract(ctx context.Context, image []byte, mimeType string) (*domain.DocumentFields, error)
}

// ExtractionService is the application-facing extraction boundary.
type ExtractionService interface {
	Enabled() bool
	Extract(ctx context.Context, image []byte) (*domain.DocumentFields, error)
}

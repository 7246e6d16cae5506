package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"github.com/cras-office/agenda/internal/core/domain"
	"github.com/cras-office/agenda/internal/core/ports"
)

// ExtractionService guards the document extractor. A nil extractor means
// extraction is not configured; the rest of the application keeps working.
type ExtractionService struct {
	extractor ports.DocumentExtractor
	log       zerolog.Logger
}

func NewExtractionService(extractor ports.DocumentExtractor, log zerolog.Logger) *ExtractionService {
	return &ExtractionService{extractor: extractor, log: log}
}

func (s *ExtractionService) Enabled() bool {
	return s.extractor != nil
}

// Extract makes a single call to the extractor. The image is not kept and
// results are not cached. Collaborator failures all surface as
// ErrExtractionFailed.
func (s *ExtractionService) Extract(ctx context.Context, image []byte) (*domain.DocumentFields, error) {
	if s.extractor == nil {
		return nil, domain.ErrExtractionUnavailable
	}
	if len(image) == 0 {
		return nil, domain.ErrUnsupportedImage
	}

	mimeType := mimetype.Detect(image).String()
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, domain.ErrUnsupportedImage
	}

	start := time.Now()
	fields, err := s.extractor.Extract(ctx, image, mimeType)
	if err != nil {
		s.log.Error().Err(err).Str("mime", mimeType).Dur("elapsed", time.Since(start)).Msg("document extraction failed")
		return nil, fmt.Errorf("%w (%v)", domain.ErrExtractionFailed, err)
	}
	if fields == nil {
		fields = &domain.DocumentFields{}
	}

	s.log.Debug().Str("mime", mimeType).Dur("elapsed", time.Since(start)).Msg("document extracted")
	return fields, nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cras-office/agenda/internal/core/domain"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type stubExtractor struct {
	fields   *domain.DocumentFields
	err      error
	calls    int
	mimeType string
}

func (s *stubExtractor) Extract(_ context.Context, _ []byte, mimeType string) (*domain.DocumentFields, error) {
	s.calls++
	s.mimeType = mimeType
	return s.fields, s.err
}

func TestExtractionService_Unavailable(t *testing.T) {
	svc := NewExtractionService(nil, discardLogger)
	assert.False(t, svc.Enabled())

	_, err := svc.Extract(context.Background(), pngHeader)
	assert.ErrorIs(t, err, domain.ErrExtractionUnavailable)
}

func TestExtractionService_Extract(t *testing.T) {
	stub := &stubExtractor{fields: &domain.DocumentFields{FullName: "Ana Pereira", CPF: "333.333.333-33", DateOfBirth: "1992-11-20"}}
	svc := NewExtractionService(stub, discardLogger)
	require.True(t, svc.Enabled())

	got, err := svc.Extract(context.Background(), pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "Ana Pereira", got.FullName)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "image/png", stub.mimeType)
}

func TestExtractionService_PartialResult(t *testing.T) {
	svc := NewExtractionService(&stubExtractor{}, discardLogger)

	got, err := svc.Extract(context.Background(), pngHeader)
	require.NoError(t, err)
	assert.Equal(t, domain.DocumentFields{}, *got)
}

func TestExtractionService_RejectsNonImages(t *testing.T) {
	stub := &stubExtractor{}
	svc := NewExtractionService(stub, discardLogger)

	for _, body := range [][]byte{nil, []byte("just some text"), []byte("%PDF-1.4\n")} {
		_, err := svc.Extract(context.Background(), body)
		assert.ErrorIs(t, err, domain.ErrUnsupportedImage)
	}
	assert.Zero(t, stub.calls)
}

func TestExtractionService_CollaboratorFailure(t *testing.T) {
	svc := NewExtractionService(&stubExtractor{err: errors.New("quota")}, discardLogger)

	_, err := svc.Extract(context.Background(), pngHeader)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

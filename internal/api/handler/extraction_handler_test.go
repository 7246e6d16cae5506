package handler

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/cras-office/agenda/internal/core/domain"
)

type stubExtractionService struct {
	enabled   bool
	extractFn func(ctx context.Context, image []byte) (*domain.DocumentFields, error)
}

func (s *stubExtractionService) Enabled() bool { return s.enabled }

func (s *stubExtractionService) Extract(ctx context.Context, image []byte) (*domain.DocumentFields, error) {
	return s.extractFn(ctx, image)
}

func multipartRequest(t *testing.T, field string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if field != "" {
		part, err := w.CreateFormFile(field, "doc.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/extractions", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func TestExtractionHandler_Success(t *testing.T) {
	e := newEcho()
	handler := NewExtractionHandler(&stubExtractionService{
		enabled: true,
		extractFn: func(ctx context.Context, image []byte) (*domain.DocumentFields, error) {
			if string(image) != "png-bytes" {
				t.Fatalf("unexpected image %q", image)
			}
			return &domain.DocumentFields{FullName: "Ana Pereira", CPF: "333.333.333-33", DateOfBirth: "1992-11-20"}, nil
		},
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(multipartRequest(t, "image", []byte("png-bytes")), rec)

	if err := handler.Extract(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"fullName":"Ana Pereira"`)) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestExtractionHandler_MissingImage(t *testing.T) {
	e := newEcho()
	handler := NewExtractionHandler(&stubExtractionService{enabled: true})

	rec := httptest.NewRecorder()
	c := e.NewContext(multipartRequest(t, "", nil), rec)

	if err := handler.Extract(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestExtractionHandler_Disabled(t *testing.T) {
	e := newEcho()
	handler := NewExtractionHandler(&stubExtractionService{enabled: false})

	c := e.NewContext(multipartRequest(t, "image", []byte("x")), httptest.NewRecorder())
	if err := handler.Extract(c); !errors.Is(err, domain.ErrExtractionUnavailable) {
		t.Fatalf("expected ErrExtractionUnavailable, got %v", err)
	}
}

func TestExtractionHandler_ServiceErrors(t *testing.T) {
	for _, want := range []error{domain.ErrUnsupportedImage, domain.ErrExtractionFailed} {
		e := newEcho()
		handler := NewExtractionHandler(&stubExtractionService{
			enabled: true,
			extractFn: func(ctx context.Context, image []byte) (*domain.DocumentFields, error) {
				return nil, want
			},
		})

		c := e.NewContext(multipartRequest(t, "image", []byte("x")), httptest.NewRecorder())
		if err := handler.Extract(c); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}

package memory

import (
	"context"
	"testing"
)

func TestStore_ReadAbsent(t *testing.T) {
	s := New()
	v, ok, err := s.Read(context.Background(), "missing")
	if err != nil || ok || v != nil {
		t.Fatalf("expected absent key, got %q ok=%v err=%v", v, ok, err)
	}
}

func TestStore_WriteCopiesValue(t *testing.T) {
	s := New()
	buf := []byte(`[1]`)
	if err := s.Write(context.Background(), "k", buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	buf[1] = '2'

	v, ok, _ := s.Read(context.Background(), "k")
	if !ok || string(v) != `[1]` {
		t.Fatalf("stored value must not alias caller buffer, got %q", v)
	}
}

func TestStore_Remove(t *testing.T) {
	s := New()
	ctx := context.Background()
	_ = s.Write(ctx, "k", []byte(`{}`))
	if err := s.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := s.Read(ctx, "k"); ok {
		t.Fatal("key should be gone")
	}
	if err := s.Remove(ctx, "k"); err != nil {
		t.Fatalf("removing an absent key must not fail: %v", err)
	}
}

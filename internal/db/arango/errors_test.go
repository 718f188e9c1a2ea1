package arango

import (
	"errors"
	"testing"

	driver "github.com/arangodb/go-driver"

	"github.com/skitsanos/arangodb-haystack/internal/db"
)

func TestMapDriverError_NotFound(t *testing.T) {
	src := driver.ArangoError{HasError: true, Code: 404, ErrorNum: 1202}

	err := mapDriverError(src)
	if !errors.Is(err, db.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	// The driver error stays reachable for callers that need it.
	var ae driver.ArangoError
	if !errors.As(err, &ae) || ae.Code != 404 {
		t.Fatalf("expected wrapped ArangoError with code 404, got %v", err)
	}
}

func TestMapDriverError_Conflict(t *testing.T) {
	src := driver.ArangoError{HasError: true, Code: 409, ErrorNum: 1210}

	err := mapDriverError(src)
	if !errors.Is(err, db.ErrKeyExists) {
		t.Fatalf("expected ErrKeyExists, got %v", err)
	}
}

func TestMapDriverError_Passthrough(t *testing.T) {
	src := errors.New("connection refused")

	err := mapDriverError(src)
	if !errors.Is(err, src) {
		t.Fatalf("expected passthrough, got %v", err)
	}
	if errors.Is(err, db.ErrKeyNotFound) || errors.Is(err, db.ErrKeyExists) {
		t.Fatal("unexpected sentinel mapping for unrelated error")
	}
}

func TestNewStore_Validation(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"no endpoints", Config{Database: "d", Collection: "c"}},
		{"no database", Config{Endpoints: []string{"http://localhost:8529"}, Collection: "c"}},
		{"no collection", Config{Endpoints: []string{"http://localhost:8529"}, Database: "d"}},
	}
	for _, tc := range cases {
		if _, err := NewStore(tc.cfg); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestNewStore_NoDial(t *testing.T) {
	// Construction must not require a reachable server.
	s, err := NewStore(Config{
		Endpoints:  []string{"http://127.0.0.1:1"},
		Database:   "haystack",
		Collection: "documents",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s == nil {
		t.Fatal("expected store")
	}
}

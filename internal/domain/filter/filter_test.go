package filter

import (
	"fmt"
	"testing"
)

func TestNew_SortedConditions(t *testing.T) {
	f, err := New(map[string]any{"zeta": 1, "alpha": "a", "mid": true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conds := f.Conditions()
	if len(conds) != 3 {
		t.Fatalf("expected 3 conditions, got %d", len(conds))
	}
	want := []string{"alpha", "mid", "zeta"}
	for i, c := range conds {
		if c.Key() != want[i] {
			t.Errorf("condition %d: expected key %s, got %s", i, want[i], c.Key())
		}
	}
	if conds[0].Value() != "a" {
		t.Fatalf("expected alpha=a, got %v", conds[0].Value())
	}
}

func TestNew_Empty(t *testing.T) {
	f, err := New(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.IsEmpty() {
		t.Fatal("expected empty filter")
	}
	if f.Equalities() != nil {
		t.Fatal("expected nil equalities for empty filter")
	}
}

func TestNew_EmptyKey(t *testing.T) {
	_, err := New(map[string]any{"": "v"})
	if err == nil {
		t.Fatal("expected error for empty filter key")
	}
}

func TestNew_TooManyConditions(t *testing.T) {
	m := make(map[string]any, MaxConditions+1)
	for i := 0; i <= MaxConditions; i++ {
		m[fmt.Sprintf("k%02d", i)] = i
	}
	_, err := New(m)
	if err == nil {
		t.Fatal("expected error for too many conditions")
	}
}

func TestEqualities_RoundTrip(t *testing.T) {
	in := map[string]any{"language": "go", "year": 2024}
	f, err := New(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := f.Equalities()
	if len(out) != len(in) {
		t.Fatalf("expected %d entries, got %d", len(in), len(out))
	}
	for k, v := range in {
		if out[k] != v {
			t.Errorf("key %s: expected %v, got %v", k, v, out[k])
		}
	}
}

package grid

import "testing"

func TestStorePutGetDelete(t *testing.T) {
	s := NewStore()
	g := &Grid{Extents: Extents{Zoom: 1, West: 0, North: 0, Width: 1, Height: 1}, Opportunities: []float64{5}}

	if _, ok := s.Get("a"); ok {
		t.Fatal("expected miss before Put")
	}

	s.Put("a", g)
	got, ok := s.Get("a")
	if !ok || got != g {
		t.Fatal("expected hit returning the same pointer after Put")
	}

	s.Delete("a")
	if _, ok := s.Get("a"); ok {
		t.Fatal("expected miss after Delete")
	}
}

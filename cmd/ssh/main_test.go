package main

import "testing"

func TestSizeTracker(t *testing.T) {
	s := newSizeTracker(80, 24)
	if w, h, err := s.getSize(); w != 80 || h != 24 || err != nil {
		t.Fatalf("getSize() = %d, %d, %v", w, h, err)
	}

	s.update(132, 50)
	if w, h, _ := s.getSize(); w != 132 || h != 50 {
		t.Fatalf("after update getSize() = %d, %d", w, h)
	}
}

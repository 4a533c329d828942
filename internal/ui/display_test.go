package ui

import "testing"

func TestNewDisplayContextWithWidth(t *testing.T) {
	d := NewDisplayContextWithWidth(72)
	if d.TermWidth != 72 {
		t.Errorf("TermWidth = %d, want 72", d.TermWidth)
	}
	if !d.IsTTY {
		t.Error("IsTTY = false, want true for a fixed-width context")
	}
}

package service

import (
	"strings"
	"testing"
)

func TestNewRecordID(t *testing.T) {
	id := NewRecordID("gen")

	if !strings.HasPrefix(id, "gen-") {
		t.Errorf("NewRecordID() = %q, want gen- prefix", id)
	}
	if parts := strings.Split(id, "-"); len(parts) != 3 {
		t.Errorf("NewRecordID() = %q, want prefix-millis-suffix shape", id)
	}
}

func TestNewRecordID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewRecordID("note")
		if seen[id] {
			t.Fatalf("NewRecordID() produced duplicate %q", id)
		}
		seen[id] = true
	}
}

package model

import (
	"testing"
)

func TestValidAdoptionStatus(t *testing.T) {
	for _, s := range []string{AdoptionStatusPending, AdoptionStatusApproved, AdoptionStatusRejected, AdoptionStatusCompleted} {
		if !ValidAdoptionStatus(s) {
			t.Errorf("ValidAdoptionStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "archived", "PENDING", "done"} {
		if ValidAdoptionStatus(s) {
			t.Errorf("ValidAdoptionStatus(%q) = true", s)
		}
	}
}

func TestActiveGuard(t *testing.T) {
	if g := ActiveGuard(AdoptionStatusPending); g == nil || *g != 1 {
		t.Errorf("ActiveGuard(pending) = %v, want 1", g)
	}
	if g := ActiveGuard(AdoptionStatusApproved); g == nil || *g != 1 {
		t.Errorf("ActiveGuard(approved) = %v, want 1", g)
	}
	if g := ActiveGuard(AdoptionStatusRejected); g != nil {
		t.Errorf("ActiveGuard(rejected) = %v, want nil", g)
	}
	if g := ActiveGuard(AdoptionStatusCompleted); g != nil {
		t.Errorf("ActiveGuard(completed) = %v, want nil", g)
	}
}

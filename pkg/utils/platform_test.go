//go:build !mobile

package utils

import "testing"

func TestIsMobileDesktop(t *testing.T) {
	t.Setenv("HBD_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
}

func TestIsMobileEmulated(t *testing.T) {
	t.Setenv("HBD_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should honour HBD_MOBILE_EMULATE=1")
	}
}

package utils

import "testing"

func TestCapabilitiesRoundTrip(t *testing.T) {
	caps := Capabilities{PermLoadsView: true, PermChatPost: false}

	blob, err := caps.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeCapabilities(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !decoded.Allow(PermLoadsView) {
		t.Error("loads.view should survive the round trip")
	}
	if decoded.Allow(PermChatPost) {
		t.Error("false entries stay denied")
	}
}

func TestCapabilitiesFailClosed(t *testing.T) {
	var nilCaps Capabilities
	if nilCaps.Allow(PermLoadsView) {
		t.Error("nil map must deny everything")
	}
	if (Capabilities{}).Allow(PermLoadsAdvance) {
		t.Error("absent key must deny")
	}
}

func TestDecodeCapabilitiesGarbage(t *testing.T) {
	if _, err := DecodeCapabilities("not-base64!!!"); err == nil {
		t.Error("expected error for bad base64")
	}
	if _, err := DecodeCapabilities("bm90IGpzb24="); err == nil { // "not json"
		t.Error("expected error for non-JSON blob")
	}
}

func TestRoleCapabilities(t *testing.T) {
	if !RoleCapabilities("dispatcher").Allow(PermLoadsAdvance) {
		t.Error("dispatcher should advance loads")
	}
	if RoleCapabilities("viewer").Allow(PermLoadsEdit) {
		t.Error("viewer must not edit loads")
	}
	if RoleCapabilities("driver").Allow(PermLoadsCreate) {
		t.Error("driver must not create loads")
	}
	if len(RoleCapabilities("intern")) != 0 {
		t.Error("unknown role gets nothing")
	}
}

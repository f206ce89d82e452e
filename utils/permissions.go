package utils

import (
	"encoding/base64"
	"encoding/json"
)

// Capability keys gating the load workflow. A key that is absent from the
// caller's map counts as denied.
const (
	PermLoadsView       = "loads.view"
	PermLoadsCreate     = "loads.create"
	PermLoadsEdit       = "loads.edit"
	PermLoadsAdvance    = "loads.advance"
	PermBrokersView     = "brokers.view"
	PermBrokersCreate   = "brokers.create"
	PermUnitsView       = "units.view"
	PermChatView        = "chat.view"
	PermChatPost        = "chat.post"
	PermDocumentsView   = "documents.view"
	PermDocumentsUpload = "documents.upload"
)

// Capabilities is the caller's resolved permission map. The wire format is a
// base64-encoded JSON object of string -> bool.
type Capabilities map[string]bool

func (c Capabilities) Allow(key string) bool {
	return c != nil && c[key]
}

func (c Capabilities) Encode() (string, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func DecodeCapabilities(blob string) (Capabilities, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, err
	}
	var caps Capabilities
	if err := json.Unmarshal(raw, &caps); err != nil {
		return nil, err
	}
	return caps, nil
}

// RoleCapabilities resolves a user role to its capability set. Unknown roles
// get nothing.
func RoleCapabilities(role string) Capabilities {
	switch role {
	case "admin":
		caps := Capabilities{}
		for _, k := range []string{
			PermLoadsView, PermLoadsCreate, PermLoadsEdit, PermLoadsAdvance,
			PermBrokersView, PermBrokersCreate, PermUnitsView,
			PermChatView, PermChatPost, PermDocumentsView, PermDocumentsUpload,
		} {
			caps[k] = true
		}
		return caps
	case "dispatcher":
		return Capabilities{
			PermLoadsView:       true,
			PermLoadsCreate:     true,
			PermLoadsEdit:       true,
			PermLoadsAdvance:    true,
			PermBrokersView:     true,
			PermBrokersCreate:   true,
			PermUnitsView:       true,
			PermChatView:        true,
			PermChatPost:        true,
			PermDocumentsView:   true,
			PermDocumentsUpload: true,
		}
	case "driver":
		return Capabilities{
			PermLoadsView:       true,
			PermChatView:        true,
			PermChatPost:        true,
			PermDocumentsView:   true,
			PermDocumentsUpload: true,
		}
	case "viewer":
		return Capabilities{
			PermLoadsView:     true,
			PermBrokersView:   true,
			PermUnitsView:     true,
			PermChatView:      true,
			PermDocumentsView: true,
		}
	default:
		return Capabilities{}
	}
}

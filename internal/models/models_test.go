package models

import (
	"encoding/json"
	"testing"
)

func TestResolveRole(t *testing.T) {
	tests := []struct {
		role, email string
		want        Role
	}{
		{"admin", "jane@example.com", RoleAdmin},
		{" Driver ", "jane@example.com", RoleDriver},
		{"resident", "driver@example.com", RoleResident},
		{"", "driver.one@example.com", RoleDriver},
		{"", "ADMIN@example.com", RoleAdmin},
		{"superuser", "jane@example.com", RoleResident},
		{"", "", RoleResident},
	}
	for _, tt := range tests {
		if got := ResolveRole(tt.role, tt.email); got != tt.want {
			t.Errorf("ResolveRole(%q, %q) = %q, want %q", tt.role, tt.email, got, tt.want)
		}
	}
}

func TestIDAcceptsNumbersAndStrings(t *testing.T) {
	var got struct {
		A ID `json:"a"`
		B ID `json:"b"`
		C ID `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a": 42, "b": "abc", "c": null}`), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.A != "42" || got.B != "abc" || got.C != "" {
		t.Errorf("got %+v", got)
	}

	var bad ID
	if err := json.Unmarshal([]byte(`{}`), &bad); err == nil {
		t.Error("expected error for object id")
	}
}

func TestDisplayName(t *testing.T) {
	var nilUser *User
	if nilUser.DisplayName() != "My" {
		t.Error("nil user")
	}
	if (&User{Name: "  "}).DisplayName() != "My" {
		t.Error("blank name")
	}
	if (&User{Name: "Jane"}).DisplayName() != "Jane" {
		t.Error("named user")
	}
}

func TestCollectionStatusValid(t *testing.T) {
	for _, s := range []CollectionStatus{CollectionStatusPending, CollectionStatusInProgress, CollectionStatusCompleted, CollectionStatusCancelled} {
		if !s.Valid() {
			t.Errorf("%q not valid", s)
		}
	}
	if CollectionStatus("archived").Valid() {
		t.Error("archived is valid")
	}
}

package appstate

import (
	"testing"

	"propdesk/config"
)

func TestStateLifecycle(t *testing.T) {
	state := New(&config.AppConfig{Language: "en"})

	if state.Language() != "en" {
		t.Fatalf("expected boot language en, got %s", state.Language())
	}
	if state.SidebarCollapsed() {
		t.Fatalf("expected sidebar expanded by default")
	}

	state.SetLanguage("pt")
	state.SetSidebarCollapsed(true)

	if state.Language() != "pt" {
		t.Fatalf("expected pt after update, got %s", state.Language())
	}
	if !state.SidebarCollapsed() {
		t.Fatalf("expected sidebar collapsed after update")
	}
}

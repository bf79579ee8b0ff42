// Package appstate holds the console's per-session UI state. It is
// created once at boot from config and handed to the presentation
// layer; nothing else in the system reads it.
package appstate

import (
	"sync"

	"propdesk/config"
)

type State struct {
	mu               sync.RWMutex
	language         string
	sidebarCollapsed bool
}

func New(cfg *config.AppConfig) *State {
	return &State{
		language:         cfg.Language,
		sidebarCollapsed: cfg.SidebarCollapsed,
	}
}

func (s *State) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

func (s *State) SetLanguage(lang string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
}

func (s *State) SidebarCollapsed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sidebarCollapsed
}

func (s *State) SetSidebarCollapsed(collapsed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarCollapsed = collapsed
}

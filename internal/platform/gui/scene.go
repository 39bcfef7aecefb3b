// Package gui is the desktop frontend: an Ebitengine window that fills the
// game shapes as vector paths on a light background.
package gui

import "github.com/vovakirdan/tri-hunt/internal/game"

// Scene is what the frame loop draws into. It keeps the last snapshot and
// the open message for the window to paint on its next frame.
type Scene struct {
	snap    game.Snapshot
	ready   bool
	message string
	visible bool
}

// Draw implements loop.Renderer.
func (s *Scene) Draw(snap game.Snapshot) {
	s.snap = snap
	s.ready = true
}

// Show implements loop.Messenger.
func (s *Scene) Show(msg string) {
	s.message = msg
	s.visible = true
}

// Dismiss closes the open message.
func (s *Scene) Dismiss() {
	s.visible = false
}

// Snapshot returns the last drawn snapshot and whether there is one.
func (s *Scene) Snapshot() (game.Snapshot, bool) {
	return s.snap, s.ready
}

// Message returns the open message, or "" when none is shown.
func (s *Scene) Message() string {
	if !s.visible {
		return ""
	}
	return s.message
}

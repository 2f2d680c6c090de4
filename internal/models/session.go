package models

import (
	"time"
)

// Session is the top-level shared container (the "partida"): a slug-keyed
// room holding a display title, its characters and its roll log. Sessions
// are never explicitly closed; abandoned ones simply stop being read.
type Session struct {
	// ID is the slug identifier the session is keyed and linked by
	ID string `json:"id"`

	// Title is the human-chosen display title
	Title string `json:"title"`

	// Created is when the first participant named the session
	Created time.Time `json:"created"`
}

// Package lxns maps the maimai DX records served by the LXNS prober API.
package lxns

import "github.com/unkn0wn-root/untagged"

// Notes is the note breakdown of a single-player chart.
type Notes struct {
	Total int `json:"total" validate:"required"`
	Tap   int `json:"tap"`
	Hold  int `json:"hold"`
	Slide int `json:"slide"`
	Touch int `json:"touch"`
	Break int `json:"break"`
}

// BuddyNotes is the note breakdown of a two-player (utage buddy) chart.
type BuddyNotes struct {
	Player1 Notes `json:"left" validate:"required"`
	Player2 Notes `json:"right" validate:"required"`
}

// ChartNotes is either a regular breakdown or a buddy pair. The API sends
// both shapes under the same key with no type field.
type ChartNotes = untagged.Optional[Notes, BuddyNotes]

type Difficulty struct {
	Type         string     `json:"type"`
	Difficulty   int        `json:"difficulty"`
	Level        string     `json:"level"`
	LevelValue   float64    `json:"level_value"`
	NoteDesigner string     `json:"note_designer"`
	Version      int        `json:"version"`
	Notes        ChartNotes `json:"notes,omitzero"`
}

type Song struct {
	ID           int          `json:"id"`
	Title        string       `json:"title"`
	Artist       string       `json:"artist"`
	Genre        string       `json:"genre"`
	BPM          int          `json:"bpm"`
	Version      int          `json:"version"`
	Difficulties []Difficulty `json:"difficulties"`
}

type Score struct {
	ID           int     `json:"id"`
	SongName     string  `json:"song_name"`
	Level        string  `json:"level"`
	LevelIndex   int     `json:"level_index"`
	Achievements float64 `json:"achievements"`
	FC           *string `json:"fc"`
	FS           *string `json:"fs"`
	DXScore      int     `json:"dx_score"`
	DXRating     float64 `json:"dx_rating"`
	Rate         string  `json:"rate"`
	Type         string  `json:"type"`
	UploadTime   string  `json:"upload_time,omitempty"`
}

type Bests struct {
	StandardTotal int     `json:"standard_total"`
	DXTotal       int     `json:"dx_total"`
	Standard      []Score `json:"standard"`
	DX            []Score `json:"dx"`
}

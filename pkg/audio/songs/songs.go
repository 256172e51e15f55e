// Package songs provides built-in melodies for simple tone devices such as a
// piezo buzzer. A song is a fixed table of (frequency, duration) notes plus a
// short silence that a player inserts after every note.
//
// Songs are values built once at program start and never modified. Accessors
// return copies, so callers cannot alter the built-in tables.
package songs

import (
	"errors"
	"fmt"
	"slices"
)

// Note frequencies (Hz).
//
// These are deliberately low. A piezo speaker needs them scaled up to be
// audible, but in simulation the lower pitches are easier on the ear.
// Reference: https://github.com/bhagman/Tone
const (
	Ab1 = 52
	Bb1 = 58
	C2  = 65
)

// Note durations (ms). Whole is an arbitrary value that feels right, not a
// tempo standard; the rest are derived from it.
const (
	Whole   = 520
	Half    = Whole / 2
	Quarter = Half / 2
	Eighth  = Quarter / 2
)

const (
	// MinimumDurationMs is the shortest tone that is still audible on the
	// simulated buzzer. Built-in songs use it as their inter-note gap.
	MinimumDurationMs = 50

	// MaxNoteGapMs bounds Song.GapMs. Longer gaps break up the melody.
	MaxNoteGapMs = 100
)

// Sentinel errors.
var (
	// ErrInvalidSong is returned when a song fails validation.
	ErrInvalidSong = errors.New("songs: invalid song")

	// ErrLengthMismatch is returned when an encoded song declares a note
	// count that differs from the notes it carries.
	ErrLengthMismatch = errors.New("songs: notes length mismatch")
)

// Note is a single tone event.
type Note struct {
	ToneHz     int `json:"tone_hz" yaml:"tone_hz" msgpack:"tone_hz"`             // Frequency in Hz
	DurationMs int `json:"duration_ms" yaml:"duration_ms" msgpack:"duration_ms"` // How long the tone sounds
}

// N is a shorthand constructor for Note.
func N(toneHz, durationMs int) Note {
	return Note{ToneHz: toneHz, DurationMs: durationMs}
}

// Song is an ordered sequence of notes plus playback metadata.
type Song struct {
	ID    string // Unique identifier
	Name  string // Display name
	GapMs int    // Silence after each note, in ms

	notes []Note
}

// New creates a song that owns a private copy of notes.
func New(id, name string, gapMs int, notes ...Note) Song {
	return Song{
		ID:    id,
		Name:  name,
		GapMs: gapMs,
		notes: slices.Clone(notes),
	}
}

// Notes returns a copy of the notes in performance order.
func (s Song) Notes() []Note {
	return slices.Clone(s.notes)
}

// NotesLength returns the number of notes in the song.
func (s Song) NotesLength() int {
	return len(s.notes)
}

// Validate reports whether the song is playable: at least one note, every
// frequency and duration positive, and a gap within [0, MaxNoteGapMs].
func (s Song) Validate() error {
	if len(s.notes) == 0 {
		return fmt.Errorf("%w: %q has no notes", ErrInvalidSong, s.ID)
	}
	for i, n := range s.notes {
		if n.ToneHz <= 0 {
			return fmt.Errorf("%w: %q note %d: tone %d Hz is not positive", ErrInvalidSong, s.ID, i, n.ToneHz)
		}
		if n.DurationMs <= 0 {
			return fmt.Errorf("%w: %q note %d: duration %d ms is not positive", ErrInvalidSong, s.ID, i, n.DurationMs)
		}
	}
	if s.GapMs < 0 || s.GapMs > MaxNoteGapMs {
		return fmt.Errorf("%w: %q gap %d ms outside [0, %d]", ErrInvalidSong, s.ID, s.GapMs, MaxNoteGapMs)
	}
	return nil
}

// ========== All Songs ==========

// All contains all built-in songs.
var All = []Song{
	FF7VictoryFanfare,
}

// ByID returns a song by its ID, or nil if not found.
func ByID(id string) *Song {
	for i := range All {
		if All[i].ID == id {
			s := All[i]
			return &s
		}
	}
	return nil
}

// ByName returns a song by its name (exact match), or nil if not found.
func ByName(name string) *Song {
	for i := range All {
		if All[i].Name == name {
			s := All[i]
			return &s
		}
	}
	return nil
}

// IDs returns all song IDs.
func IDs() []string {
	ids := make([]string, len(All))
	for i, s := range All {
		ids[i] = s.ID
	}
	return ids
}

// Names returns all song names.
func Names() []string {
	names := make([]string, len(All))
	for i, s := range All {
		names[i] = s.Name
	}
	return names
}

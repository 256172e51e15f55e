// Package midifile exports songs as Standard MIDI Files so they can be
// auditioned in any sequencer or DAW.
//
// Each song becomes a single track: a tempo event, then a NoteOn/NoteOff
// pair per note. The song's inter-note gap is written as a rest.
package midifile

import (
	"fmt"
	"io"
	"math"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/haivivi/piezo/pkg/audio/songs"
)

// Defaults for Options.
const (
	DefaultResolution = 960
	DefaultVelocity   = 100
)

// Options configures MIDI export.
type Options struct {
	// BPM is the tempo written to the file. Zero picks the tempo at which
	// songs.Quarter lasts one beat.
	BPM float64

	// Resolution is the number of ticks per quarter note. Default 960.
	Resolution uint16

	// Transpose shifts every note by this many semitones. The built-in
	// songs are written at placeholder pitches; +36 lifts them to a
	// buzzer-like register.
	Transpose int

	// Channel is the MIDI channel (0-15).
	Channel uint8

	// Velocity is the NoteOn velocity (1-127). Default 100.
	Velocity uint8

	// Events are passed to Song.Events, e.g. a duration policy.
	Events []songs.EventOption
}

func (o Options) withDefaults() Options {
	if o.BPM <= 0 {
		o.BPM = 60000.0 / songs.Quarter
	}
	if o.Resolution == 0 {
		o.Resolution = DefaultResolution
	}
	if o.Velocity == 0 {
		o.Velocity = DefaultVelocity
	}
	return o
}

// KeyForHz returns the nearest MIDI key for a frequency, clamped to 0..127.
// A4 (440 Hz) is key 69.
func KeyForHz(hz int) uint8 {
	if hz <= 0 {
		return 0
	}
	return clampKey(int(math.Round(69 + 12*math.Log2(float64(hz)/440))))
}

func clampKey(k int) uint8 {
	return uint8(min(max(k, 0), 127))
}

// Encode converts a song into a single-track SMF.
func Encode(s songs.Song, opts Options) (*smf.SMF, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	if opts.Channel > 15 {
		return nil, fmt.Errorf("midifile: channel %d out of range", opts.Channel)
	}
	if opts.Velocity > 127 {
		return nil, fmt.Errorf("midifile: velocity %d out of range", opts.Velocity)
	}

	ticks := func(ms int) uint32 {
		return uint32(math.Round(float64(ms) * float64(opts.Resolution) * opts.BPM / 60000))
	}

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(s.Name))
	tr.Add(0, smf.MetaTempo(opts.BPM))

	var pending uint32
	for ev := range s.Events(opts.Events...) {
		switch ev.Kind {
		case songs.EventTone:
			key := clampKey(int(KeyForHz(ev.ToneHz)) + opts.Transpose)
			tr.Add(pending, midi.NoteOn(opts.Channel, key, opts.Velocity))
			tr.Add(ticks(ev.DurationMs), midi.NoteOff(opts.Channel, key))
			pending = 0
		case songs.EventGap:
			pending += ticks(ev.DurationMs)
		}
	}
	tr.Close(pending)

	f := smf.New()
	f.TimeFormat = smf.MetricTicks(opts.Resolution)
	if err := f.Add(tr); err != nil {
		return nil, fmt.Errorf("midifile: add track: %w", err)
	}
	return f, nil
}

// Write encodes s and writes the SMF to w.
func Write(w io.Writer, s songs.Song, opts Options) (int64, error) {
	f, err := Encode(s, opts)
	if err != nil {
		return 0, err
	}
	n, err := f.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("midifile: write: %w", err)
	}
	return n, nil
}

package songs

import (
	"fmt"
	"iter"
	"strings"
)

// EventKind distinguishes tone events from the silence between them.
type EventKind uint8

const (
	EventTone EventKind = iota // Emit a tone
	EventGap                   // Stay silent
)

func (k EventKind) String() string {
	switch k {
	case EventTone:
		return "tone"
	case EventGap:
		return "gap"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is one step a player performs when iterating a song.
type Event struct {
	Kind       EventKind
	Index      int // Index of the note this event belongs to
	ToneHz     int // Zero for gaps
	DurationMs int
}

// DurationPolicy decides what happens to notes shorter than the minimum
// audible duration.
type DurationPolicy uint8

const (
	// PolicyAccept plays durations exactly as written.
	PolicyAccept DurationPolicy = iota
	// PolicyClamp raises short notes to the minimum duration.
	PolicyClamp
)

func (p DurationPolicy) String() string {
	switch p {
	case PolicyAccept:
		return "accept"
	case PolicyClamp:
		return "clamp"
	default:
		return fmt.Sprintf("DurationPolicy(%d)", uint8(p))
	}
}

// ParseDurationPolicy parses "accept" or "clamp" (case-insensitive).
func ParseDurationPolicy(s string) (DurationPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "accept":
		return PolicyAccept, nil
	case "clamp":
		return PolicyClamp, nil
	default:
		return 0, fmt.Errorf("songs: unknown duration policy %q", s)
	}
}

type eventConfig struct {
	policy    DurationPolicy
	minimumMs int
}

// EventOption configures Song.Events.
type EventOption func(*eventConfig)

// WithPolicy sets the duration policy. The default is PolicyAccept.
func WithPolicy(p DurationPolicy) EventOption {
	return func(c *eventConfig) { c.policy = p }
}

// WithMinimumMs sets the minimum duration used by PolicyClamp.
// Non-positive values keep the default, MinimumDurationMs.
func WithMinimumMs(ms int) EventOption {
	return func(c *eventConfig) {
		if ms > 0 {
			c.minimumMs = ms
		}
	}
}

func newEventConfig(opts []EventOption) eventConfig {
	cfg := eventConfig{policy: PolicyAccept, minimumMs: MinimumDurationMs}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Events yields the song as a player would perform it: each note as a tone
// event, followed by a gap event when the song's gap is positive.
func (s Song) Events(opts ...EventOption) iter.Seq[Event] {
	cfg := newEventConfig(opts)
	notes := s.notes
	gap := s.GapMs
	return func(yield func(Event) bool) {
		for i, n := range notes {
			dur := n.DurationMs
			if cfg.policy == PolicyClamp && dur < cfg.minimumMs {
				dur = cfg.minimumMs
			}
			if !yield(Event{Kind: EventTone, Index: i, ToneHz: n.ToneHz, DurationMs: dur}) {
				return
			}
			if gap > 0 {
				if !yield(Event{Kind: EventGap, Index: i, DurationMs: gap}) {
					return
				}
			}
		}
	}
}

// Duration returns the total playback time in milliseconds, gaps included.
func (s Song) Duration(opts ...EventOption) int {
	total := 0
	for ev := range s.Events(opts...) {
		total += ev.DurationMs
	}
	return total
}

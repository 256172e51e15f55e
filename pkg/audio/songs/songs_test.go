package songs

import (
	"errors"
	"testing"
)

func TestAll(t *testing.T) {
	if len(All) == 0 {
		t.Fatal("All songs list is empty")
	}

	for _, s := range All {
		if s.ID == "" {
			t.Error("song ID is empty")
		}
		if s.Name == "" {
			t.Errorf("song %s name is empty", s.ID)
		}
		if err := s.Validate(); err != nil {
			t.Errorf("song %s: %v", s.ID, err)
		}
		if s.NotesLength() != len(s.Notes()) {
			t.Errorf("song %s NotesLength() = %d, len(Notes()) = %d", s.ID, s.NotesLength(), len(s.Notes()))
		}
		if s.GapMs < 0 || s.GapMs > MaxNoteGapMs {
			t.Errorf("song %s gap = %d, want within [0, %d]", s.ID, s.GapMs, MaxNoteGapMs)
		}
		for i, n := range s.Notes() {
			if n.ToneHz <= 0 {
				t.Errorf("song %s note %d tone = %d", s.ID, i, n.ToneHz)
			}
			if n.DurationMs <= 0 {
				t.Errorf("song %s note %d duration = %d", s.ID, i, n.DurationMs)
			}
		}
	}
}

func TestFF7VictoryFanfare(t *testing.T) {
	want := []Note{
		{65, 130}, {65, 130}, {65, 130}, {65, 390},
		{52, 390}, {58, 390}, {65, 260}, {58, 130}, {65, 1040},
	}

	got := FF7VictoryFanfare.Notes()
	if len(got) != len(want) {
		t.Fatalf("len(Notes()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("note %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if FF7VictoryFanfare.GapMs != 50 {
		t.Errorf("GapMs = %d, want 50", FF7VictoryFanfare.GapMs)
	}
}

func TestDurationUnits(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"Whole", Whole, 520},
		{"Half", Half, 260},
		{"Quarter", Quarter, 130},
		{"Eighth", Eighth, 65},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestNotesReturnsCopy(t *testing.T) {
	notes := FF7VictoryFanfare.Notes()
	notes[0] = N(1, 1)

	if got := FF7VictoryFanfare.Notes()[0]; got != N(C2, Quarter) {
		t.Errorf("built-in note mutated through copy: %+v", got)
	}
}

func TestNewCopiesInput(t *testing.T) {
	in := []Note{N(440, 100)}
	s := New("x", "X", 0, in...)
	in[0] = N(1, 1)

	if got := s.Notes()[0]; got != N(440, 100) {
		t.Errorf("New aliased caller slice: %+v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		song Song
		ok   bool
	}{
		{"valid", New("a", "A", 50, N(440, 100)), true},
		{"zero gap", New("a", "A", 0, N(440, 100)), true},
		{"max gap", New("a", "A", MaxNoteGapMs, N(440, 100)), true},
		{"no notes", New("a", "A", 50), false},
		{"zero tone", New("a", "A", 50, N(0, 100)), false},
		{"negative duration", New("a", "A", 50, N(440, -1)), false},
		{"negative gap", New("a", "A", -1, N(440, 100)), false},
		{"gap too long", New("a", "A", MaxNoteGapMs+1, N(440, 100)), false},
		{"zero value", Song{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.song.Validate()
			if tt.ok && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidSong) {
				t.Fatalf("Validate() = %v, want ErrInvalidSong", err)
			}
		})
	}
}

func TestByID(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"ff7_victory_fanfare", "Final Fantasy VII Victory Fanfare"},
		{"nonexistent", ""},
	}

	for _, tt := range tests {
		s := ByID(tt.id)
		if tt.want == "" {
			if s != nil {
				t.Errorf("ByID(%q) expected nil, got %v", tt.id, s)
			}
		} else {
			if s == nil {
				t.Errorf("ByID(%q) returned nil", tt.id)
			} else if s.Name != tt.want {
				t.Errorf("ByID(%q).Name = %q, want %q", tt.id, s.Name, tt.want)
			}
		}
	}
}

func TestByIDReturnsCopy(t *testing.T) {
	s := ByID("ff7_victory_fanfare")
	s.GapMs = 0

	if FF7VictoryFanfare.GapMs != MinimumDurationMs || All[0].GapMs != MinimumDurationMs {
		t.Error("ByID result aliases the catalog")
	}
}

func TestByName(t *testing.T) {
	if s := ByName("Final Fantasy VII Victory Fanfare"); s == nil || s.ID != "ff7_victory_fanfare" {
		t.Errorf("ByName returned %v", s)
	}
	if s := ByName("nonexistent"); s != nil {
		t.Errorf("ByName(nonexistent) = %v, want nil", s)
	}
}

func TestIDsAndNames(t *testing.T) {
	ids := IDs()
	names := Names()
	if len(ids) != len(All) || len(names) != len(All) {
		t.Fatalf("IDs()=%d Names()=%d, want %d", len(ids), len(names), len(All))
	}
	if ids[0] != "ff7_victory_fanfare" {
		t.Errorf("IDs()[0] = %q", ids[0])
	}
	if names[0] != "Final Fantasy VII Victory Fanfare" {
		t.Errorf("Names()[0] = %q", names[0])
	}
}

package songs

import "testing"

func TestEventsFanfare(t *testing.T) {
	want := [][2]int{
		{65, 130}, {65, 130}, {65, 130}, {65, 390},
		{52, 390}, {58, 390}, {65, 260}, {58, 130}, {65, 1040},
	}

	var events []Event
	for ev := range FF7VictoryFanfare.Events() {
		events = append(events, ev)
	}

	if len(events) != len(want)*2 {
		t.Fatalf("got %d events, want %d", len(events), len(want)*2)
	}
	for i, w := range want {
		tone := events[2*i]
		gap := events[2*i+1]
		if tone.Kind != EventTone || tone.ToneHz != w[0] || tone.DurationMs != w[1] || tone.Index != i {
			t.Errorf("event %d = %+v, want tone %d Hz for %d ms", 2*i, tone, w[0], w[1])
		}
		if gap.Kind != EventGap || gap.DurationMs != 50 || gap.ToneHz != 0 || gap.Index != i {
			t.Errorf("event %d = %+v, want 50 ms gap", 2*i+1, gap)
		}
	}
}

func TestEventsNoGap(t *testing.T) {
	s := New("a", "A", 0, N(440, 100), N(880, 100))

	n := 0
	for ev := range s.Events() {
		if ev.Kind != EventTone {
			t.Errorf("unexpected %s event", ev.Kind)
		}
		n++
	}
	if n != 2 {
		t.Errorf("got %d events, want 2", n)
	}
}

func TestEventsEarlyStop(t *testing.T) {
	n := 0
	for range FF7VictoryFanfare.Events() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("n = %d, want 3", n)
	}
}

func TestEventsPolicy(t *testing.T) {
	s := New("short", "Short", 0, N(440, 10), N(440, 80))

	tests := []struct {
		name string
		opts []EventOption
		want []int
	}{
		{"default accepts", nil, []int{10, 80}},
		{"accept", []EventOption{WithPolicy(PolicyAccept)}, []int{10, 80}},
		{"clamp default minimum", []EventOption{WithPolicy(PolicyClamp)}, []int{50, 80}},
		{"clamp custom minimum", []EventOption{WithPolicy(PolicyClamp), WithMinimumMs(100)}, []int{100, 100}},
		{"non-positive minimum ignored", []EventOption{WithPolicy(PolicyClamp), WithMinimumMs(0)}, []int{50, 80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []int
			for ev := range s.Events(tt.opts...) {
				got = append(got, ev.DurationMs)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestSongDuration(t *testing.T) {
	// 3*130 + 3*390 + 260 + 130 + 1040 = 2990, plus 9 gaps of 50.
	if got := FF7VictoryFanfare.Duration(); got != 2990+9*50 {
		t.Errorf("Duration() = %d, want %d", got, 2990+9*50)
	}
}

func TestParseDurationPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    DurationPolicy
		wantErr bool
	}{
		{"", PolicyAccept, false},
		{"accept", PolicyAccept, false},
		{"CLAMP", PolicyClamp, false},
		{" clamp ", PolicyClamp, false},
		{"stretch", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDurationPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDurationPolicy(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDurationPolicy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKindStrings(t *testing.T) {
	if EventTone.String() != "tone" || EventGap.String() != "gap" {
		t.Errorf("EventKind strings = %q, %q", EventTone, EventGap)
	}
	if PolicyClamp.String() != "clamp" || PolicyAccept.String() != "accept" {
		t.Errorf("DurationPolicy strings = %q, %q", PolicyAccept, PolicyClamp)
	}
}

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/haivivi/piezo/pkg/audio/songs"
	"github.com/haivivi/piezo/pkg/cli"
)

var (
	policyFlag string
	minMsFlag  int
)

type eventView struct {
	Kind       string `json:"kind" yaml:"kind"`
	Note       int    `json:"note" yaml:"note"`
	ToneHz     int    `json:"tone_hz,omitempty" yaml:"tone_hz,omitempty"`
	DurationMs int    `json:"duration_ms" yaml:"duration_ms"`
}

type eventsResult struct {
	ID     string      `json:"id" yaml:"id"`
	Policy string      `json:"policy" yaml:"policy"`
	Events []eventView `json:"events" yaml:"events"`
}

func (r eventsResult) Table() cli.Table {
	t := cli.Table{
		Title:   fmt.Sprintf("%s (policy: %s)", r.ID, r.Policy),
		Headers: []string{"NOTE", "KIND", "TONE (Hz)", "DURATION (ms)"},
	}
	total := 0
	for _, ev := range r.Events {
		tone := "-"
		if ev.ToneHz > 0 {
			tone = strconv.Itoa(ev.ToneHz)
		}
		t.Rows = append(t.Rows, []string{strconv.Itoa(ev.Note + 1), ev.Kind, tone, strconv.Itoa(ev.DurationMs)})
		total += ev.DurationMs
	}
	t.Footer = fmt.Sprintf("%d events, %s total", len(r.Events), cli.FormatDuration(total))
	return t
}

var eventsCmd = &cobra.Command{
	Use:   "events <id>",
	Short: "Show the tone/gap events a player performs",
	Long: `Show the tone and gap events a player performs for a song.

Notes shorter than the minimum audible duration are played as written
with --policy accept (the default), or raised to the minimum with
--policy clamp. The minimum defaults to 50 ms.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := outputOptions()
		if err != nil {
			return err
		}
		evOpts, policy, err := eventOptions(cmd)
		if err != nil {
			return err
		}
		s, err := loadSong(cmd, args[0])
		if err != nil {
			return err
		}

		result := eventsResult{ID: s.ID, Policy: policy.String(), Events: []eventView{}}
		for ev := range s.Events(evOpts...) {
			result.Events = append(result.Events, eventView{
				Kind:       ev.Kind.String(),
				Note:       ev.Index,
				ToneHz:     ev.ToneHz,
				DurationMs: ev.DurationMs,
			})
		}
		return cli.Output(result, opts)
	},
}

// eventOptions resolves the duration policy from flags, then config.
// A flag set explicitly wins even when its value is zero.
func eventOptions(cmd *cobra.Command) ([]songs.EventOption, songs.DurationPolicy, error) {
	name := policyFlag
	if name == "" {
		name = globalConfig.Policy
	}
	policy, err := songs.ParseDurationPolicy(name)
	if err != nil {
		return nil, 0, err
	}
	minMs := globalConfig.MinDurationMs
	if cmd.Flags().Changed("min-ms") {
		minMs = minMsFlag
	}
	if minMs < 0 {
		return nil, 0, fmt.Errorf("--min-ms must not be negative")
	}
	return []songs.EventOption{songs.WithPolicy(policy), songs.WithMinimumMs(minMs)}, policy, nil
}

func addPolicyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&policyFlag, "policy", "", "short note policy: accept or clamp")
	cmd.Flags().IntVar(&minMsFlag, "min-ms", 0, "minimum audible duration for --policy clamp (default 50)")
}

func init() {
	addPolicyFlags(eventsCmd)
	rootCmd.AddCommand(eventsCmd)
}

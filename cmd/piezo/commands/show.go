package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/haivivi/piezo/pkg/audio/songs"
	"github.com/haivivi/piezo/pkg/cli"
	"github.com/haivivi/piezo/pkg/songbook"
)

// showResult renders a song as its serialized document, or as a note table.
type showResult struct {
	songs.Document `yaml:",inline"`

	durationMs int
}

func (r showResult) Table() cli.Table {
	t := cli.Table{
		Title:   fmt.Sprintf("%s (%s)", r.Name, r.ID),
		Headers: []string{"#", "TONE (Hz)", "DURATION (ms)"},
		Footer: fmt.Sprintf("%d notes, %d ms gap after each, %s total",
			len(r.Notes), r.GapMs, cli.FormatDuration(r.durationMs)),
	}
	for i, n := range r.Notes {
		t.Rows = append(t.Rows, []string{strconv.Itoa(i + 1), strconv.Itoa(n.ToneHz), strconv.Itoa(n.DurationMs)})
	}
	return t
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a song's note table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := outputOptions()
		if err != nil {
			return err
		}
		s, err := loadSong(cmd, args[0])
		if err != nil {
			return err
		}
		return cli.Output(showResult{Document: s.Document(), durationMs: s.Duration()}, opts)
	},
}

// loadSong looks up a song in the catalog and the songbook.
func loadSong(cmd *cobra.Command, id string) (songs.Song, error) {
	var s songs.Song
	err := withBook(func(b *songbook.Book) error {
		var err error
		s, err = b.Get(cmd.Context(), id)
		return err
	})
	return s, err
}

func init() {
	rootCmd.AddCommand(showCmd)
}

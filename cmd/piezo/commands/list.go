package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/haivivi/piezo/pkg/audio/songs"
	"github.com/haivivi/piezo/pkg/cli"
	"github.com/haivivi/piezo/pkg/songbook"
)

// songSummary is one row of `piezo list`.
type songSummary struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Notes      int    `json:"notes" yaml:"notes"`
	GapMs      int    `json:"gap_ms" yaml:"gap_ms"`
	DurationMs int    `json:"duration_ms" yaml:"duration_ms"`
	BuiltIn    bool   `json:"builtin" yaml:"builtin"`
}

type listResult []songSummary

func (r listResult) Table() cli.Table {
	t := cli.Table{
		Headers: []string{"ID", "NAME", "NOTES", "GAP", "DURATION", "SOURCE"},
		Footer:  fmt.Sprintf("%d songs", len(r)),
	}
	for _, s := range r {
		source := "songbook"
		if s.BuiltIn {
			source = "built-in"
		}
		t.Rows = append(t.Rows, []string{
			s.ID,
			s.Name,
			strconv.Itoa(s.Notes),
			cli.FormatDuration(s.GapMs),
			cli.FormatDuration(s.DurationMs),
			source,
		})
	}
	return t
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in and stored songs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := outputOptions()
		if err != nil {
			return err
		}
		var result listResult
		err = withBook(func(b *songbook.Book) error {
			entries, err := b.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, e := range entries {
				result = append(result, summarize(e.Song, e.BuiltIn))
			}
			return nil
		})
		if err != nil {
			return err
		}
		return cli.Output(result, opts)
	},
}

func summarize(s songs.Song, builtIn bool) songSummary {
	return songSummary{
		ID:         s.ID,
		Name:       s.Name,
		Notes:      s.NotesLength(),
		GapMs:      s.GapMs,
		DurationMs: s.Duration(),
		BuiltIn:    builtIn,
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}

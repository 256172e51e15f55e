package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haivivi/piezo/pkg/audio/songs"
	"github.com/haivivi/piezo/pkg/cli"
	"github.com/haivivi/piezo/pkg/songbook"
)

var (
	importFile   string
	importFormat string
)

var importCmd = &cobra.Command{
	Use:   "import -f <file>",
	Short: "Validate a song file and store it in the songbook",
	Long: `Validate a song file and store it in the songbook.

The format is taken from the file extension (.yaml, .yml, .json, .msgpack)
unless --from is given. Example YAML:

  id: beep
  name: Beep
  note_interior_end_gap_ms: 20
  notes:
    - tone_hz: 440
      duration_ms: 100`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if importFile == "" {
			return fmt.Errorf("-f is required")
		}
		var (
			f   songs.Format
			err error
		)
		if importFormat != "" {
			f, err = songs.ParseFormat(importFormat)
		} else {
			f, err = songs.FormatFromPath(importFile)
		}
		if err != nil {
			return err
		}

		data, err := os.ReadFile(importFile)
		if err != nil {
			return fmt.Errorf("read song file: %w", err)
		}
		s, err := songs.Decode(f, data)
		if err != nil {
			return err
		}
		err = withBook(func(b *songbook.Book) error {
			return b.Put(cmd.Context(), s)
		})
		if err != nil {
			return err
		}
		cli.PrintSuccess("Imported %s (%d notes)", s.ID, s.NotesLength())
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a stored song",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := withBook(func(b *songbook.Book) error {
			return b.Delete(cmd.Context(), args[0])
		})
		if err != nil {
			return err
		}
		cli.PrintSuccess("Deleted %s", args[0])
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "song file to import")
	importCmd.Flags().StringVar(&importFormat, "from", "", "file format (yaml, json, msgpack)")
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(deleteCmd)
}

package commands

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/haivivi/piezo/pkg/audio/midifile"
	"github.com/haivivi/piezo/pkg/audio/songs"
	"github.com/haivivi/piezo/pkg/cli"
)

var (
	exportTo      string
	transposeFlag int
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a song as MIDI, YAML, JSON or msgpack",
	Long: `Export a song.

--to midi writes a Standard MIDI File. The built-in songs use low
placeholder pitches; --transpose 36 moves them three octaves up.
MIDI export honours --policy and --min-ms.

Other formats write the song document, including notes_length.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSong(cmd, args[0])
		if err != nil {
			return err
		}

		var data []byte
		if exportTo == "midi" || exportTo == "mid" {
			data, err = exportMIDI(cmd, s)
		} else {
			var f songs.Format
			if f, err = songs.ParseFormat(exportTo); err != nil {
				return err
			}
			data, err = songs.Encode(f, s)
		}
		if err != nil {
			return err
		}

		if err := cli.OutputBytes(data, outputFile); err != nil {
			return err
		}
		if outputFile != "" {
			slog.Debug("exported song", "id", s.ID, "format", exportTo, "bytes", len(data))
			cli.PrintSuccess("Exported %s to %s", s.ID, outputFile)
		}
		return nil
	},
}

func exportMIDI(cmd *cobra.Command, s songs.Song) ([]byte, error) {
	evOpts, _, err := eventOptions(cmd)
	if err != nil {
		return nil, err
	}
	transpose := globalConfig.Transpose
	if cmd.Flags().Changed("transpose") {
		transpose = transposeFlag
	}
	var buf bytes.Buffer
	if _, err := midifile.Write(&buf, s, midifile.Options{Transpose: transpose, Events: evOpts}); err != nil {
		return nil, fmt.Errorf("export midi: %w", err)
	}
	return buf.Bytes(), nil
}

func init() {
	exportCmd.Flags().StringVar(&exportTo, "to", "yaml", "export format: midi, yaml, json, msgpack")
	exportCmd.Flags().IntVar(&transposeFlag, "transpose", 0, "MIDI transposition in semitones")
	addPolicyFlags(exportCmd)
	rootCmd.AddCommand(exportCmd)
}

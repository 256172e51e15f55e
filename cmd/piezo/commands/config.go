package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/haivivi/piezo/pkg/audio/songs"
	"github.com/haivivi/piezo/pkg/cli"
)

// configView is the effective configuration as shown by "config show".
type configView struct {
	Path          string `json:"path" yaml:"path"`
	Songbook      string `json:"songbook" yaml:"songbook"`
	Policy        string `json:"policy" yaml:"policy"`
	MinDurationMs int    `json:"min_duration_ms" yaml:"min_duration_ms"`
	Transpose     int    `json:"transpose" yaml:"transpose"`
}

func (v configView) Table() cli.Table {
	return cli.Table{
		Title:   "Configuration",
		Headers: []string{"KEY", "VALUE"},
		Rows: [][]string{
			{"songbook", v.Songbook},
			{"policy", v.Policy},
			{"min_duration_ms", strconv.Itoa(v.MinDurationMs)},
			{"transpose", strconv.Itoa(v.Transpose)},
		},
		Footer: v.Path,
	}
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long: `Manage the settings in config.yaml.

Keys: songbook, policy, min_duration_ms, transpose.
Command-line flags always take precedence over these settings.

Examples:
  piezo config show
  piezo config set policy clamp
  piezo config set transpose 36
  piezo config unset transpose
  piezo config path`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := outputOptions()
		if err != nil {
			return err
		}
		policy, err := songs.ParseDurationPolicy(globalConfig.Policy)
		if err != nil {
			return err
		}
		minMs := globalConfig.MinDurationMs
		if minMs == 0 {
			minMs = songs.MinimumDurationMs
		}
		return cli.Output(configView{
			Path:          globalConfig.Path(),
			Songbook:      globalConfig.SongbookPath(),
			Policy:        policy.String(),
			MinDurationMs: minMs,
			Transpose:     globalConfig.Transpose,
		}, opts)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateConfig(args[0], args[1])
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Restore a configuration value to its default",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateConfig(args[0], "")
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(globalConfig.Path())
		return nil
	},
}

func updateConfig(key, value string) error {
	if err := globalConfig.Set(key, value); err != nil {
		return err
	}
	if err := globalConfig.Save(); err != nil {
		return err
	}
	if value == "" {
		cli.PrintSuccess("Unset %s", key)
	} else {
		cli.PrintSuccess("Set %s = %s", key, value)
	}
	return nil
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

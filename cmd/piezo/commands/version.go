package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haivivi/piezo/cmd/piezo/internal/build"
	"github.com/haivivi/piezo/pkg/cli"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := outputOptions()
		if err != nil {
			return err
		}
		if opts.Format != cli.FormatTable {
			return cli.Output(build.Get(), opts)
		}
		fmt.Println(build.String())
		if IsVerbose() {
			info := build.Get()
			fmt.Printf("  go:     %s\n", info.Go)
			fmt.Printf("  config: %s\n", globalConfig.Dir)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

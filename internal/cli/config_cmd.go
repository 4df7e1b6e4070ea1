// internal/cli/config_cmd.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"serde-cli/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Config utilities",
	}

	cmd.AddCommand(newConfigPathCmd(), newConfigShowCmd())
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the per-user config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, ok := userConfigDir()
			if !ok {
				return errors.New("cannot determine user config directory")
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.DefaultFilePath(dir))
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved config and where it came from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.Show(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

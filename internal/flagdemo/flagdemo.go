// Package flagdemo is the clap-test command: positional args, a flag with
// a fixed set of values and two subcommands.
package flagdemo

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

const (
	Version      = "0.1.0"
	defaultArg   = "default value"
	afterHelpMsg = "this is clap test description after help"
)

var flagChoices = []string{"a", "b", "c"}

// NewRootCmd builds clap-test. Flag values live in the returned command,
// so each call is independent.
func NewRootCmd() *cobra.Command {
	var flag string

	cmd := &cobra.Command{
		Use:     "clap-test [ARGS...]",
		Short:   "this is clap test description",
		Long:    "this is clap test description\n\nauthor: aico",
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(flagChoices, flag) {
				return fmt.Errorf("invalid value %q for --flag: must be one of %s", flag, strings.Join(flagChoices, ", "))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "flag: %s\n", flag)
			fmt.Fprintf(w, "arg: %s\n", firstOr(args, defaultArg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flag, "flag", "f", "a", "flag description (a, b or c)")
	cmd.SetUsageTemplate(cmd.UsageTemplate() + "\n" + afterHelpMsg + "\n")

	cmd.AddCommand(
		newSubCmd("sub1", &flag),
		newSubCmd("sub2", &flag),
	)
	return cmd
}

// newSubCmd prints the flag and the root arg, which is never set under a
// subcommand. Only sub1 reports its own positional.
func newSubCmd(name string, flag *string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [ARGS...]",
		Short: name + " description",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "flag: %s\n", *flag)
			fmt.Fprintf(w, "arg: %s\n", defaultArg)
			if name == "sub1" {
				fmt.Fprintf(w, "sub_arg: %s\n", firstOr(args, defaultArg))
			}
			return nil
		},
	}
}

func firstOr(args []string, fallback string) string {
	if len(args) == 0 {
		return fallback
	}
	return args[0]
}

// Execute is called by cmd/clap-test/main.go
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}
	return 0
}

// Main runs clap-test with the process arguments.
func Main() {
	os.Exit(Execute(os.Args[1:], os.Stdout, os.Stderr))
}

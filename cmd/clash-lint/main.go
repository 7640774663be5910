package main

import (
	"fmt"
	"os"

	"github.com/clashkit/clash-lint/pkg/cli"
	"github.com/clashkit/clash-lint/pkg/console"
	"github.com/clashkit/clash-lint/pkg/constants"
	"github.com/spf13/cobra"
)

// Build-time variables set by GoReleaser
var (
	version = "dev"
)

// Global flags
var verbose bool

var rootCmd = &cobra.Command{
	Use:   constants.CLIName,
	Short: "Validate and highlight Clash proxy-router configuration files",
	Long: `clash-lint checks Clash configuration files for YAML syntax errors,
warns about missing top-level sections (listening ports, proxy sources,
routing rules), and renders syntax-highlighted configs in the terminal.

Syntax errors fail validation; shape warnings are advisory only.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate configuration files",
	Long: `Validate one or more Clash configuration files.

Examples:
  ` + constants.CLIName + ` check config.yaml
  ` + constants.CLIName + ` check configs/*.yaml
  ` + constants.CLIName + ` check --strict config.yaml
  ` + constants.CLIName + ` check --watch configs/

The --strict flag additionally validates against the built-in Clash
configuration schema.
The --watch flag takes a directory and revalidates files as they change.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		strict, _ := cmd.Flags().GetBool("strict")
		watch, _ := cmd.Flags().GetBool("watch")
		if watch {
			if len(args) != 1 {
				fmt.Fprintln(os.Stderr, console.FormatErrorMessage("watch mode takes exactly one directory"))
				os.Exit(1)
			}
			if err := cli.WatchDirectory(args[0], strict, verbose); err != nil {
				fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
				os.Exit(1)
			}
			return
		}
		if err := cli.CheckFiles(args, strict, verbose); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var highlightCmd = &cobra.Command{
	Use:   "highlight <file>",
	Short: "Print a configuration file with syntax highlighting",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.HighlightFile(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the classified token spans of a configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.TokensFile(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(console.FormatInfoMessage(fmt.Sprintf("%s version %s", constants.CLIName, cli.Version())))
	},
}

func init() {
	// Add global verbose flag to root command
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output showing detailed information")

	// Add flags to check command
	checkCmd.Flags().Bool("strict", false, "Validate against the built-in Clash configuration schema")
	checkCmd.Flags().BoolP("watch", "w", false, "Watch a directory and revalidate configuration files on change")

	// Add all commands to root
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	// Set version information in the CLI package
	cli.SetVersionInfo(version)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(console.FormatErrorMessage(err.Error()))
		os.Exit(1)
	}
}

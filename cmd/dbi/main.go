package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	// Importing a driver package is the loading step: each registers its
	// component and generic-operation overrides from init.
	_ "github.com/freyreeste/DBI/drivers/mysql"
	_ "github.com/freyreeste/DBI/drivers/postgres"
	_ "github.com/freyreeste/DBI/drivers/redis"
	_ "github.com/freyreeste/DBI/drivers/sqlite"
)

var (
	version = "0.0.1"
	// Build information variables
	Version   = "dev"     // Default version for development
	GitCommit = "unknown" // Git commit hash
	BuildTime = "unknown" // Build timestamp
)

// printVersionInfo displays detailed version information
func printVersionInfo() {
	fmt.Printf("DBI CLI v%s (build %s)\n", version, Version)
	fmt.Printf("Built: %s, from commit: %s\n", BuildTime, GitCommit)
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dbi",
	Short: "DBI Command Line Interface",
	Long: "A CLI for the DBI driver platform: list loaded driver components, resolve driver names, " +
		"probe connectivity, and inspect type mappings.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Lookup("version") != nil && cmd.Flags().Lookup("version").Changed {
			printVersionInfo()
			return nil
		}
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Show version information and exit")

	setupCommands()
}

func main() {
	Execute()
}

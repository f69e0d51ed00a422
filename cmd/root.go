package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmd runs the API server when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "naukri-api",
	Short: "Naukri job board API",
	Long: `Naukri job board API: accounts for candidates, recruiters and admins, job postings,
applications with a recruiter-approved messaging channel, and interview scheduling.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default: ./config.yaml if present)")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// Package cmd contains the ledger client commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var url string

var rootCmd = &cobra.Command{
	Use:   "ledger",
	Short: "A client for the ledger service",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&url, "url", "u", "http://localhost:8080", "Url of the ledger service.")
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

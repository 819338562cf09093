// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/coc-sheet-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "coc-sheet-api",
	Short: "Call of Cthulhu character sheet gRPC server",
	Long:  `coc-sheet-api serves investigator sheets over gRPC and stores them in a spreadsheet, Redis or SQLite.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

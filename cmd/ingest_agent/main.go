// Package main provides the entry point for the candidate CSV ingestion CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ingest_agent",
	Short: "Candidate CSV ingestion and standardization",
	Long:  "ingest_agent reduces heterogeneous recruiting-candidate CSV exports to one canonical schema, detecting each file's source format and merging duplicate identities by record completeness.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package main provides the entry point for the resume-tailor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Resume tailoring pipeline",
	Long:  "Tailor tailors a candidate's resume and cover letter to a target job, combining an AI generation source with a deterministic scoring, repair, and guarantee layer.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

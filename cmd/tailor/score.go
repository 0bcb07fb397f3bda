package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/report"
	"github.com/jonathan/resume-tailor/internal/scoring"
)

var scoreCommand = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate profile against a target job",
	Long:  "Computes the five-category match score for a candidate profile against a target job profile and prints the breakdown with blockers. No generation call is made.",
	RunE:  runScoreCmd,
}

var (
	scoreCandidatePath string
	scoreTargetPath    string
)

func init() {
	scoreCommand.Flags().StringVar(&scoreCandidatePath, "candidate", "", "Path to candidate profile JSON (required)")
	scoreCommand.Flags().StringVar(&scoreTargetPath, "target", "", "Path to target job profile JSON (required)")

	rootCmd.AddCommand(scoreCommand)
}

func runScoreCmd(_ *cobra.Command, _ []string) error {
	candidate, target, err := loadProfiles(scoreCandidatePath, scoreTargetPath)
	if err != nil {
		return err
	}

	breakdown := scoring.Score(candidate.AsDocument(), target)
	blockers := scoring.Blockers(breakdown)

	printer := report.NewPrinter(os.Stdout)
	printer.PrintScore(fmt.Sprintf("Match score: %s", target.RoleTitle), breakdown)
	printer.PrintBlockers(blockers)

	return nil
}

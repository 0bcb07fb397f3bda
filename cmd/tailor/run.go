package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/gateway"
	"github.com/jonathan/resume-tailor/internal/generation"
	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/jonathan/resume-tailor/internal/report"
	"github.com/jonathan/resume-tailor/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Tailor a resume to a target job",
	Long: `Runs the full tailoring request through the resilience gateway: generation
(AI-backed or deterministic fallback), structural validation, quality gate,
and score booster. Prints a score report and writes the tailored document.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runTailorCmd,
}

var (
	runConfigPath    string
	runCandidatePath string
	runTargetPath    string
	runResumePath    string
	runJobPath       string
	runOutPath       string
	runAPIKey        string
	runModel         string
	runOffline       bool
	runVerbose       bool
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVar(&runCandidatePath, "candidate", "", "Path to candidate profile JSON (required)")
	runCommand.Flags().StringVar(&runTargetPath, "target", "", "Path to target job profile JSON (required)")
	runCommand.Flags().StringVar(&runResumePath, "resume", "", "Path to raw resume text file (optional)")
	runCommand.Flags().StringVar(&runJobPath, "job", "", "Path to raw job description text file (optional)")
	runCommand.Flags().StringVarP(&runOutPath, "out", "o", "", "Path to write the tailored document JSON (optional)")
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	runCommand.Flags().StringVar(&runModel, "model", "", "Gemini model name")
	runCommand.Flags().BoolVar(&runOffline, "offline", false, "Skip the AI source and use the deterministic generator")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(runCommand)
}

func runTailorCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	candidate, target, err := loadProfiles(runCandidatePath, runTargetPath)
	if err != nil {
		return err
	}

	rawResume, err := readOptionalFile(runResumePath)
	if err != nil {
		return err
	}
	rawJob, err := readOptionalFile(runJobPath)
	if err != nil {
		return err
	}

	primary, cleanup, err := buildPrimarySource(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	gw := gateway.New(cfg.GatewayConfig(), cfg.BoostConfig(), primary, log)
	result := gw.Generate(ctx, candidate, target, rawResume, rawJob, gateway.Options{})

	printer := report.NewPrinter(os.Stdout)
	printer.PrintResult(result)

	if runOutPath != "" {
		if err := writeDocument(runOutPath, result.Document); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Tailored document written to %s\n", runOutPath)
	}

	return nil
}

// loadRunConfig merges the optional config file with CLI flag overrides.
func loadRunConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if runConfigPath != "" {
		loaded, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if runAPIKey != "" {
		cfg.APIKey = runAPIKey
	}
	if runModel != "" {
		cfg.Model = runModel
	}
	if runOffline {
		cfg.Offline = true
	}
	if runVerbose {
		cfg.Verbose = true
	}

	return cfg, nil
}

// buildPrimarySource constructs the AI-backed source, or nil when running
// offline or without credentials (the gateway then uses its fallback).
func buildPrimarySource(ctx context.Context, cfg *config.Config, log *zap.Logger) (generation.Source, func(), error) {
	noop := func() {}

	if cfg.Offline {
		log.Info("offline mode, using deterministic generator")
		return nil, noop, nil
	}

	apiKey := cfg.ResolveAPIKey()
	if apiKey == "" {
		log.Warn("no API key configured, using deterministic generator")
		return nil, noop, nil
	}

	source, err := generation.NewGeminiSource(ctx, apiKey, cfg.Model)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to create generation source: %w", err)
	}
	return source, func() { _ = source.Close() }, nil
}

// loadProfiles reads and validates the candidate and target profile files.
func loadProfiles(candidatePath, targetPath string) (*types.CandidateProfile, *types.TargetProfile, error) {
	if candidatePath == "" {
		return nil, nil, fmt.Errorf("--candidate is required")
	}
	if targetPath == "" {
		return nil, nil, fmt.Errorf("--target is required")
	}

	var candidate types.CandidateProfile
	if err := readJSONFile(candidatePath, &candidate); err != nil {
		return nil, nil, fmt.Errorf("failed to load candidate profile: %w", err)
	}

	var target types.TargetProfile
	if err := readJSONFile(targetPath, &target); err != nil {
		return nil, nil, fmt.Errorf("failed to load target profile: %w", err)
	}
	if err := target.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid target profile: %w", err)
	}

	return &candidate, &target, nil
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func readOptionalFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func writeDocument(path string, doc *types.TailoredDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

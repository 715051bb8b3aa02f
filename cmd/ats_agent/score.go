package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/ats"
	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/enhance"
	"github.com/jonathan/ats-scorer/internal/extract"
	"github.com/jonathan/ats-scorer/internal/job"
	"github.com/jonathan/ats-scorer/internal/llm"
	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/resume"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long:  "Parse a resume and a job description, compute the ATS compatibility score with a full component breakdown and suggestions, and print the result as JSON. With an API key, semantic scoring and suggestions are AI-enhanced.",
	RunE:  runScore,
}

var (
	scoreConfigFile string
	scoreResume     string
	scoreJob        string
	scoreJobURL     string
	scoreTitle      string
	scoreCompany    string
	scoreAPIKey     string
	scoreBrowser    bool
	scoreVerbose    bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfigFile, "config", "c", "", "Path to JSON config file (flags override its values)")
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume document (.pdf/.docx/.txt)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job posting text file")
	scoreCmd.Flags().StringVarP(&scoreJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	scoreCmd.Flags().StringVar(&scoreTitle, "title", "", "Job title override")
	scoreCmd.Flags().StringVar(&scoreCompany, "company", "", "Company name override")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API key for AI enhancement (default: GEMINI_API_KEY)")
	scoreCmd.Flags().BoolVar(&scoreBrowser, "browser", false, "Render JavaScript-heavy pages in a headless browser")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print human-readable reports to stderr")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := config.Config{
		Resume:     scoreResume,
		Job:        scoreJob,
		JobURL:     scoreJobURL,
		JobTitle:   scoreTitle,
		JobCompany: scoreCompany,
		APIKey:     scoreAPIKey,
		UseBrowser: scoreBrowser,
		Verbose:    scoreVerbose,
	}

	if scoreConfigFile != "" {
		fileCfg, err := config.LoadConfig(scoreConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	printer := observability.NewPrinter(os.Stderr)

	resumeText, err := extract.FromFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}
	parsed := resume.Parse(resumeText)
	if cfg.Verbose {
		printer.PrintParsedResume(parsed)
	}

	jobText, err := loadJobText(cmd, cfg.Job, cfg.JobURL, cfg.UseBrowser, cfg.Verbose)
	if err != nil {
		return err
	}

	var meta *job.Metadata
	if cfg.JobTitle != "" || cfg.JobCompany != "" {
		meta = &job.Metadata{Title: cfg.JobTitle, Company: cfg.JobCompany}
	}
	requirements := job.Parse(jobText, meta)
	if cfg.Verbose {
		printer.PrintJobRequirements(requirements)
	}

	scorer := ats.NewScorer()
	var enhancer *enhance.Service
	if cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()

		enhancer = enhance.NewService(client)
		scorer = ats.NewScorer(ats.WithSemanticScorer(enhance.NewSemanticScorer(enhancer)))
	}

	result := scorer.Calculate(ctx, &parsed.Content, requirements)

	// AI suggestions are best-effort; failures keep the deterministic result
	if enhancer != nil {
		if extra, err := enhancer.Enhance(ctx, &parsed.Content, requirements, result); err == nil {
			result.Suggestions = append(result.Suggestions, extra...)
		} else if cfg.Verbose {
			fmt.Fprintf(os.Stderr, "AI suggestions unavailable: %v\n", err)
		}
	}

	if cfg.Verbose {
		printer.PrintScoreReport(result)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	return nil
}

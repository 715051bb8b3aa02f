package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/extract"
	"github.com/jonathan/ats-scorer/internal/fetch"
	"github.com/jonathan/ats-scorer/internal/job"
	"github.com/jonathan/ats-scorer/internal/observability"
)

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Parse a job description into structured requirements",
	Long:  "Parse a job description from a text file or URL into structured requirements and ranked keywords, printed as JSON.",
	RunE:  runParseJob,
}

var (
	parseJobFile    string
	parseJobURL     string
	parseJobTitle   string
	parseJobCompany string
	parseJobBrowser bool
	parseJobVerbose bool
)

func init() {
	parseJobCmd.Flags().StringVarP(&parseJobFile, "file", "f", "", "Path to job posting text file")
	parseJobCmd.Flags().StringVarP(&parseJobURL, "url", "u", "", "URL to fetch the job posting from")
	parseJobCmd.Flags().StringVar(&parseJobTitle, "title", "", "Job title override")
	parseJobCmd.Flags().StringVar(&parseJobCompany, "company", "", "Company name override")
	parseJobCmd.Flags().BoolVar(&parseJobBrowser, "browser", false, "Render JavaScript-heavy pages in a headless browser")
	parseJobCmd.Flags().BoolVarP(&parseJobVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	rootCmd.AddCommand(parseJobCmd)
}

func runParseJob(cmd *cobra.Command, args []string) error {
	text, err := loadJobText(cmd, parseJobFile, parseJobURL, parseJobBrowser, parseJobVerbose)
	if err != nil {
		return err
	}

	var meta *job.Metadata
	if parseJobTitle != "" || parseJobCompany != "" {
		meta = &job.Metadata{Title: parseJobTitle, Company: parseJobCompany}
	}

	requirements := job.Parse(text, meta)

	if parseJobVerbose {
		observability.NewPrinter(os.Stderr).PrintJobRequirements(requirements)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(requirements); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	return nil
}

// loadJobText reads a job posting from a file or fetches it from a URL.
// Exactly one of file and urlStr must be set.
func loadJobText(cmd *cobra.Command, file, urlStr string, useBrowser, verbose bool) (string, error) {
	if file == "" && urlStr == "" {
		return "", fmt.Errorf("either --file or --url must be provided")
	}
	if file != "" && urlStr != "" {
		return "", fmt.Errorf("--file and --url are mutually exclusive; provide only one")
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return extract.Normalize(string(data)), nil
	}

	opts := fetch.DefaultOptions()
	opts.UseBrowser = useBrowser
	opts.Verbose = verbose

	text, err := fetch.JobPosting(cmd.Context(), urlStr, opts)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return text, nil
}

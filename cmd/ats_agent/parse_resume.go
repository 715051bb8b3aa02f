package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/extract"
	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/resume"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume document into structured sections",
	Long:  "Extract text from a resume document, split it into sections, and print the structured result as JSON.",
	RunE:  runParseResume,
}

var (
	parseResumeFile    string
	parseResumeVerbose bool
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeFile, "file", "f", "", "Path to resume document (.pdf/.docx/.txt) (required)")
	parseResumeCmd.Flags().BoolVarP(&parseResumeVerbose, "verbose", "v", false, "Print a human-readable summary to stderr")

	_ = parseResumeCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, args []string) error {
	text, err := extract.FromFile(parseResumeFile)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	parsed := resume.Parse(text)

	if parseResumeVerbose {
		observability.NewPrinter(os.Stderr).PrintParsedResume(parsed)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(parsed); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract normalized plain text from a resume document",
	Long:  "Extract plain text from a .pdf, .docx, or .txt document, normalize its whitespace, and print it to stdout or write it to a file.",
	RunE:  runExtract,
}

var (
	extractFile string
	extractOut  string
)

func init() {
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Path to document (.pdf/.docx/.txt) (required)")
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Output file (default: stdout)")

	_ = extractCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, err := extract.FromFile(extractFile)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	if extractOut != "" {
		if err := os.WriteFile(extractOut, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Extracted text written to %s\n", extractOut)
		return nil
	}

	fmt.Fprintln(os.Stdout, text)
	return nil
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-ingest/internal/classify"
	"github.com/jonathan/candidate-ingest/internal/csvio"
	"github.com/jonathan/candidate-ingest/internal/mapping"
	"github.com/jonathan/candidate-ingest/internal/observability"
	"github.com/jonathan/candidate-ingest/internal/vocab"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Show how a CSV file would be classified and mapped",
	Long:  "Classify a single CSV file and print the detected format with its evidence, the column mapping, unmapped columns, and nearest-synonym suggestions. Nothing is extracted or written.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var inspectVocabPath string

func init() {
	inspectCmd.Flags().StringVar(&inspectVocabPath, "vocab", "", "Path to a YAML vocabulary override")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	path := args[0]

	v := vocab.Default()
	if inspectVocabPath != "" {
		loaded, err := vocab.LoadFile(inspectVocabPath)
		if err != nil {
			return err
		}
		v = loaded
	}

	table, err := csvio.ReadFile(path)
	if err != nil {
		return err
	}

	result := classify.NewClassifier(v).Classify(table.Headers, table.Sample(2))
	columnMapping := mapping.NewMapper(v).Map(table.Headers, result.Format)
	suggestions := mapping.Suggest(table.Headers, columnMapping, v)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintClassification(path, result)
	printer.PrintMapping(table.Headers, columnMapping, suggestions)

	return nil
}

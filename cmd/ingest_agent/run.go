package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-ingest/internal/config"
	"github.com/jonathan/candidate-ingest/internal/observability"
	"github.com/jonathan/candidate-ingest/internal/pipeline"
	"github.com/jonathan/candidate-ingest/internal/vocab"
)

var runCmd = &cobra.Command{
	Use:   "run [files...]",
	Short: "Ingest candidate CSV files into the canonical schema",
	Long:  "Classify each input file's source format, map its columns to the canonical schema, extract records, deduplicate by identity, and write the standardized output plus a duplicate audit report.",
	RunE:  runRun,
}

var (
	outDir     string
	noDedupe   bool
	verbose    bool
	jobs       int
	vocabPath  string
	configPath string
)

func init() {
	runCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory for standardized CSV and duplicate report")
	runCmd.Flags().BoolVar(&noDedupe, "no-dedupe", false, "Skip deduplication (keep all records)")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed progress messages")
	runCmd.Flags().IntVar(&jobs, "jobs", 0, "Maximum files processed concurrently (0 or 1 runs serially)")
	runCmd.Flags().StringVar(&vocabPath, "vocab", "", "Path to a YAML vocabulary override")
	runCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a JSON config file")

	rootCmd.AddCommand(runCmd)
}

// resolveRunConfig builds the effective config from flags and args, with
// the config file filling anything the flags left unset. The jobs flag
// defaults to 0 so a config-file value can take effect through the merge.
func resolveRunConfig(args []string) (config.Config, error) {
	cfg := config.Config{
		Files:     args,
		OutputDir: outDir,
		NoDedupe:  noDedupe,
		Verbose:   verbose,
		Jobs:      jobs,
		Vocab:     vocabPath,
	}

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	if len(cfg.Files) == 0 {
		return config.Config{}, fmt.Errorf("no input files; pass CSV paths as arguments or set them in the config file")
	}
	if cfg.OutputDir == "" {
		return config.Config{}, fmt.Errorf("output directory is required; use --out or the config file")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := resolveRunConfig(args)
	if err != nil {
		return err
	}

	var v *vocab.Vocabulary
	if cfg.Vocab != "" {
		loaded, err := vocab.LoadFile(cfg.Vocab)
		if err != nil {
			return err
		}
		v = loaded
	}

	result, err := pipeline.Run(cmd.Context(), pipeline.RunOptions{
		Files:      cfg.Files,
		OutputDir:  cfg.OutputDir,
		SkipDedupe: cfg.NoDedupe,
		Verbose:    cfg.Verbose,
		Jobs:       cfg.Jobs,
		Vocabulary: v,
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		for _, fr := range result.Files {
			if fr.Err == nil {
				printer.PrintClassification(fr.Path, fr.Classification)
			}
		}
		printer.PrintRunSummary(result)
	}

	fmt.Fprintf(os.Stdout, "Processed %d records from %d file(s), kept %d unique candidates\n",
		result.Extracted, len(result.Files), len(result.Kept))
	fmt.Fprintf(os.Stdout, "Standardized output: %s\n", result.OutputPath)
	if result.ReportPath != "" {
		fmt.Fprintf(os.Stdout, "Duplicates report:   %s\n", result.ReportPath)
	}

	return nil
}

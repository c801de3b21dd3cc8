// Package pipeline provides the high-level orchestration for a candidate
// ingestion run: per-file classification, mapping, and extraction feeding
// one global deduplication pass.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/candidate-ingest/internal/classify"
	"github.com/jonathan/candidate-ingest/internal/csvio"
	"github.com/jonathan/candidate-ingest/internal/dedupe"
	"github.com/jonathan/candidate-ingest/internal/extract"
	"github.com/jonathan/candidate-ingest/internal/mapping"
	"github.com/jonathan/candidate-ingest/internal/types"
	"github.com/jonathan/candidate-ingest/internal/vocab"
)

// Output file names within the run's output directory.
const (
	StandardizedFileName = "standardized_candidates.csv"
	DuplicatesFileName   = "duplicates_report.csv"
)

// classificationCacheSize bounds the header-signature memo cache. Exports
// from one tool share identical headers, so repeat files hit the cache.
const classificationCacheSize = 64

// sampleRowCount is how many rows each file contributes to the classifier.
const sampleRowCount = 2

// ProgressEvent represents a progress update during a run.
type ProgressEvent struct {
	Step    string `json:"step"`
	File    string `json:"file,omitempty"`
	Message string `json:"message"`
}

// ProgressCallback is called as the run advances. Calls are serialized
// even when files are processed concurrently, so the callback never runs
// against itself.
type ProgressCallback func(event ProgressEvent)

// progressEmitter serializes progress callbacks across worker goroutines.
type progressEmitter struct {
	mu sync.Mutex
	fn ProgressCallback
}

func (e *progressEmitter) emit(step, file, message string) {
	if e.fn == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fn(ProgressEvent{Step: step, File: file, Message: message})
}

// RunOptions holds configuration for one ingestion run.
type RunOptions struct {
	Files      []string
	OutputDir  string
	SkipDedupe bool
	Verbose    bool
	// Jobs bounds concurrent per-file processing; values below 2 run
	// files serially. Output order is independent of Jobs.
	Jobs       int
	Vocabulary *vocab.Vocabulary
	OnProgress ProgressCallback
}

// FileResult is the per-file outcome: the classification with its
// evidence, mapping coverage, and the extracted records, or the error
// that made this file a no-op.
type FileResult struct {
	Path           string
	Classification types.ClassificationResult
	MappedColumns  int
	TotalColumns   int
	Records        []types.CanonicalRecord
	Err            error
}

// RunResult is the outcome of a whole run.
type RunResult struct {
	RunID      uuid.UUID
	Files      []FileResult
	Extracted  int // records extracted across all files, pre-dedup
	Kept       []types.CanonicalRecord
	Duplicates []types.DuplicateEntry
	OutputPath string
	ReportPath string
}

// Run executes the full pipeline. Per-file failures are logged and
// reported in the result without aborting sibling files; the run itself
// fails only when no file yields records. Files are processed
// concurrently up to opts.Jobs, but results are restored to input file
// order before deduplication so tie-breaking stays reproducible.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	if len(opts.Files) == 0 {
		return nil, fmt.Errorf("no input files provided")
	}

	v := opts.Vocabulary
	if v == nil {
		v = vocab.Default()
	}

	result := &RunResult{
		RunID: uuid.New(),
		Files: make([]FileResult, len(opts.Files)),
	}

	classCache, err := lru.New[string, types.ClassificationResult](classificationCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create classification cache: %w", err)
	}

	emit := &progressEmitter{fn: opts.OnProgress}

	proc := &processor{
		classifier: classify.NewClassifier(v),
		mapper:     mapping.NewMapper(v),
		vocab:      v,
		cache:      classCache,
		verbose:    opts.Verbose,
	}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range opts.Files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			emit.emit("process", path, "processing file")
			result.Files[i] = proc.processFile(path)
			if result.Files[i].Err != nil {
				log.Printf("error processing %s: %v", path, result.Files[i].Err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []types.CanonicalRecord
	succeeded := 0
	for _, fr := range result.Files {
		if fr.Err != nil {
			continue
		}
		succeeded++
		all = append(all, fr.Records...)
	}
	result.Extracted = len(all)

	if succeeded == 0 {
		return result, fmt.Errorf("no input files could be processed")
	}
	if len(all) == 0 {
		return result, fmt.Errorf("no records extracted from any input file")
	}

	if opts.SkipDedupe {
		emit.emit("dedupe", "", "skipping deduplication")
		result.Kept = all
	} else {
		emit.emit("dedupe", "", fmt.Sprintf("deduplicating %d records", len(all)))
		result.Kept, result.Duplicates = dedupe.Deduplicate(all)
	}

	if opts.OutputDir != "" {
		if err := writeOutputs(opts.OutputDir, result); err != nil {
			return result, err
		}
	}

	return result, nil
}

// processor bundles the per-file stages with the classification memo cache.
type processor struct {
	classifier *classify.Classifier
	mapper     *mapping.Mapper
	vocab      *vocab.Vocabulary
	cache      *lru.Cache[string, types.ClassificationResult]
	verbose    bool
}

// processFile runs classify, map, and extract for one file. Any failure
// is captured in the FileResult rather than propagated.
func (p *processor) processFile(path string) FileResult {
	fr := FileResult{Path: path}

	table, err := csvio.ReadFile(path)
	if err != nil {
		fr.Err = err
		return fr
	}
	fr.TotalColumns = len(table.Headers)

	fr.Classification = p.classifyCached(table.Headers, table.Sample(sampleRowCount))
	if p.verbose {
		log.Printf("[VERBOSE] %s: detected format %s (confidence %.2f)",
			path, fr.Classification.Format, fr.Classification.Confidence)
		for _, ev := range fr.Classification.Evidence {
			log.Printf("[VERBOSE] %s: evidence: %s", path, ev)
		}
	}

	columnMapping := p.mapper.Map(table.Headers, fr.Classification.Format)
	fr.MappedColumns = columnMapping.Len()
	if p.verbose {
		log.Printf("[VERBOSE] %s: mapped %d/%d columns", path, fr.MappedColumns, fr.TotalColumns)
	}

	extractor := extract.NewExtractor(fr.Classification.Format, columnMapping, p.vocab)
	fr.Records = make([]types.CanonicalRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		rec := extractor.Extract(row)
		rec.SourceFile = filepath.Base(path)
		fr.Records = append(fr.Records, rec)
	}
	if p.verbose {
		log.Printf("[VERBOSE] %s: extracted %d records", path, len(fr.Records))
	}

	return fr
}

// classifyCached memoizes classification by header signature. The
// classifier is a pure function of the headers, so the cache cannot
// change results, only skip repeat work.
func (p *processor) classifyCached(headers []string, samples []map[string]string) types.ClassificationResult {
	key := headerSignature(headers)
	if cached, ok := p.cache.Get(key); ok {
		return cached
	}
	result := p.classifier.Classify(headers, samples)
	p.cache.Add(key, result)
	return result
}

func headerSignature(headers []string) string {
	lower := make([]string, len(headers))
	for i, h := range headers {
		lower[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return strings.Join(lower, "\x1f")
}

// writeOutputs persists the standardized output and, when duplicates were
// found, the audit report.
func writeOutputs(outputDir string, result *RunResult) error {
	rows := make([][]string, 0, len(result.Kept))
	for i := range result.Kept {
		rows = append(rows, result.Kept[i].Row())
	}
	outPath, err := csvio.Write(filepath.Join(outputDir, StandardizedFileName), types.AllColumns, rows)
	if err != nil {
		return err
	}
	result.OutputPath = outPath

	if len(result.Duplicates) == 0 {
		return nil
	}
	dupRows := make([][]string, 0, len(result.Duplicates))
	for i := range result.Duplicates {
		dupRows = append(dupRows, result.Duplicates[i].Row())
	}
	reportPath, err := csvio.Write(filepath.Join(outputDir, DuplicatesFileName), types.DuplicateReportColumns, dupRows)
	if err != nil {
		return err
	}
	result.ReportPath = reportPath
	return nil
}

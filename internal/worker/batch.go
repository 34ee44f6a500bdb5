package worker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/baseballlmb/rostermatch/internal/model"
)

// Processor runs the matching pipeline on one roster file.
type Processor interface {
	ProcessFile(ctx context.Context, path string) *model.FileReport
}

// FileJob processes one roster document.
type FileJob struct {
	Path      string
	Processor Processor
}

// Execute runs the pipeline on the job's file.
func (j *FileJob) Execute(ctx context.Context) Result {
	return &FileResult{Report: j.Processor.ProcessFile(ctx, j.Path)}
}

// FileResult wraps one file report as a pool result.
type FileResult struct {
	Report *model.FileReport
}

// GetError returns the report's failure, if any.
func (r *FileResult) GetError() error {
	if r.Report.Failed() {
		return errors.New(r.Report.Error)
	}
	return nil
}

// BatchProcessor processes multiple roster files concurrently.
type BatchProcessor struct {
	processor   Processor
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(processor Processor, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		processor:   processor,
		concurrency: concurrency,
	}
}

// Process runs the pipeline over all paths and returns reports in input
// order.
func (b *BatchProcessor) Process(ctx context.Context, paths []string) []*model.FileReport {
	if len(paths) == 0 {
		return nil
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&FileJob{Path: path, Processor: b.processor})
	}

	byFile := make(map[string]*model.FileReport, len(paths))
	for _, result := range pool.Wait() {
		report := result.(*FileResult).Report
		byFile[report.File] = report
	}

	reports := make([]*model.FileReport, 0, len(paths))
	for _, path := range paths {
		if report, ok := byFile[path]; ok {
			reports = append(reports, report)
		}
	}
	return reports
}

// rosterExtensions are the file types the ingest layer understands.
var rosterExtensions = map[string]bool{
	".xlsx": true, ".xlsm": true, ".csv": true,
	".pdf": true, ".html": true, ".htm": true, ".txt": true,
}

// CollectFiles expands an input argument into roster file paths. A
// directory yields every supported file under it; a .txt list file yields
// one path per non-comment line; anything else is taken as a single roster
// file.
func CollectFiles(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	if info.IsDir() {
		var paths []string
		err := filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && rosterExtensions[strings.ToLower(filepath.Ext(path))] {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", input, err)
		}
		sort.Strings(paths)
		return paths, nil
	}

	if strings.EqualFold(filepath.Ext(input), ".txt") {
		return readListFile(input)
	}

	return []string{input}, nil
}

func readListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open list file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var paths []string
	seen := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || seen[line] {
			continue
		}
		seen[line] = true
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read list file: %w", err)
	}

	return paths, nil
}

package driver

import (
	"context"
	"os"

	"github.com/pattyshack/gt/parseutil"
	"golang.org/x/sync/errgroup"

	"github.com/pattyshack/minic/analyzer"
	"github.com/pattyshack/minic/ast"
	"github.com/pattyshack/minic/parser"
	"github.com/pattyshack/minic/report"
)

// Outcome of one analysis run over one source file.
type Result struct {
	FileName string

	Program  *ast.Program // nil on failure
	Analysis *analyzer.Analysis
	Errors   []error

	// Only populated on success.
	CrossReferences []analyzer.CrossReference

	Report *report.Report
}

func (result *Result) Failed() bool {
	return len(result.Errors) > 0
}

// Runs a fresh analysis over the content.  Never shares state with other
// runs.
func AnalyzeSource(fileName string, content []byte) *Result {
	analysis := analyzer.NewAnalysis()
	emitter := &parseutil.Emitter{}

	program := parser.ParseSource(fileName, content, analysis, emitter)

	errs := emitter.Errors()
	result := &Result{
		FileName: fileName,
		Program:  program,
		Analysis: analysis,
		Errors:   errs,
		Report:   report.New(fileName, analysis, errs),
	}

	if program != nil {
		result.CrossReferences = analyzer.CollectCrossReferences(program)
	}
	return result
}

func AnalyzeFile(fileName string) (*Result, error) {
	content, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	return AnalyzeSource(fileName, content), nil
}

// Analyzes the files concurrently, at most limit at a time (unbounded when
// limit <= 0).  Results are in input order.  Analysis failures are reported
// through each result; only read errors (or cancellation) fail the call.
func AnalyzeFiles(
	ctx context.Context,
	fileNames []string,
	limit int,
) (
	[]*Result,
	error,
) {
	results := make([]*Result, len(fileNames))

	group, groupCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}

	for idx, fileName := range fileNames {
		idx, fileName := idx, fileName

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			result, err := AnalyzeFile(fileName)
			if err != nil {
				return err
			}

			results[idx] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

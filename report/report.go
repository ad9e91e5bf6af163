package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pattyshack/minic/analyzer"
	"github.com/pattyshack/minic/ast"
	"github.com/pattyshack/minic/parser/lr"
)

type Format string

const (
	TextFormat = Format("text")
	YAMLFormat = Format("yaml")
	JSONFormat = Format("json")
)

func ParseFormat(value string) (Format, error) {
	switch format := Format(strings.ToLower(value)); format {
	case TextFormat, YAMLFormat, JSONFormat:
		return format, nil
	}
	return "", fmt.Errorf("unknown report format (%s)", value)
}

type DiagnosticKind string

const (
	SemanticDiagnostic = DiagnosticKind("semantic")
	SyntaxDiagnostic   = DiagnosticKind("syntax")
	LexDiagnostic      = DiagnosticKind("lex")
)

// The single terminal error of a failed run.
type Diagnostic struct {
	Kind    DiagnosticKind `yaml:"kind" json:"kind"`
	Line    int            `yaml:"line,omitempty" json:"line,omitempty"`
	Message string         `yaml:"message" json:"message"`

	err error
}

func NewDiagnostic(err error) *Diagnostic {
	diagnostic := &Diagnostic{
		Kind:    LexDiagnostic,
		Message: err.Error(),
		err:     err,
	}

	semanticErr := &analyzer.SemanticError{}
	syntaxErr := &lr.SyntaxError{}
	if errors.As(err, &semanticErr) {
		diagnostic.Kind = SemanticDiagnostic
		diagnostic.Line = semanticErr.Line
	} else if errors.As(err, &syntaxErr) {
		diagnostic.Kind = SyntaxDiagnostic
		diagnostic.Line = syntaxErr.Line()
	}

	return diagnostic
}

// The underlying analysis error.  Not carried through encoding.
func (diagnostic *Diagnostic) Cause() error {
	return diagnostic.err
}

type Symbol struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Value       string `yaml:"value,omitempty" json:"value,omitempty"`
	Initialized bool   `yaml:"initialized" json:"initialized"`
	Context     int    `yaml:"context" json:"context"`
	Line        int    `yaml:"line" json:"line"`
}

func valueString(value ast.Scalar) string {
	if value == nil {
		return ""
	}
	if value.Type() == ast.CharType {
		return strconv.Quote(value.String())
	}
	return value.String()
}

// Final state of one analysis run.  The symbol listing is only populated
// when the whole program was recognized.
type Report struct {
	File    string      `yaml:"file" json:"file"`
	Success bool        `yaml:"success" json:"success"`
	Symbols []Symbol    `yaml:"symbols,omitempty" json:"symbols,omitempty"`
	Notices []string    `yaml:"notices,omitempty" json:"notices,omitempty"`
	Error   *Diagnostic `yaml:"error,omitempty" json:"error,omitempty"`
}

func New(
	fileName string,
	analysis *analyzer.Analysis,
	errs []error,
) *Report {
	report := &Report{
		File: fileName,
	}

	for _, notice := range analysis.Notices() {
		report.Notices = append(report.Notices, notice.String())
	}

	if len(errs) > 0 {
		report.Error = NewDiagnostic(errs[0])
		return report
	}

	if !analysis.Completed() {
		return report
	}

	report.Success = true
	for _, symbol := range analysis.Symbols() {
		report.Symbols = append(
			report.Symbols,
			Symbol{
				Name:        symbol.Name,
				Type:        symbol.Type.String(),
				Value:       valueString(symbol.Value),
				Initialized: symbol.IsInitialized(),
				Context:     symbol.Context,
				Line:        symbol.Line,
			})
	}

	return report
}

func (report *Report) Encode(output io.Writer, format Format) error {
	switch format {
	case YAMLFormat:
		encoder := yaml.NewEncoder(output)
		encoder.SetIndent(2)
		err := encoder.Encode(report)
		if err != nil {
			return err
		}
		return encoder.Close()
	case JSONFormat:
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case TextFormat:
		return report.render(output)
	}
	return fmt.Errorf("unknown report format (%s)", format)
}

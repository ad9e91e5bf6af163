package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"github.com/pattyshack/gt/parseutil"
	"gopkg.in/yaml.v3"

	"github.com/pattyshack/minic/analyzer"
	"github.com/pattyshack/minic/parser"
)

func analyze(src string) *Report {
	analysis := analyzer.NewAnalysis()
	emitter := &parseutil.Emitter{}
	parser.ParseSource("test.mc", []byte(src), analysis, emitter)
	return New("test.mc", analysis, emitter.Errors())
}

func TestSuccessReport(t *testing.T) {
	report := analyze(
		`int main() { int a = 5; char c = "x"; float f; int y = 2.5; };`)
	be.True(t, report.Success)
	be.True(t, report.Error == nil)
	be.Equal(t, len(report.Notices), 1)

	be.Equal(t, len(report.Symbols), 4)
	be.Equal(
		t,
		report.Symbols[0],
		Symbol{
			Name:        "a",
			Type:        "int",
			Value:       "5",
			Initialized: true,
			Context:     analyzer.GlobalContext,
			Line:        report.Symbols[0].Line,
		})
	be.Equal(t, report.Symbols[1].Value, `"x"`)
	be.Equal(t, report.Symbols[2].Value, "")
	be.True(t, !report.Symbols[2].Initialized)
	be.Equal(t, report.Symbols[3].Value, "2")
}

func TestFailureReport(t *testing.T) {
	report := analyze("int main() {\nint a;\nint a;\n};")
	be.True(t, !report.Success)
	be.Equal(t, len(report.Symbols), 0)
	be.True(t, report.Error != nil)
	be.Equal(t, report.Error.Kind, SemanticDiagnostic)
	be.Err(t, report.Error.Cause(), analyzer.ErrRedeclared)
	be.True(t, report.Error.Line > 0)
	be.True(
		t,
		strings.Contains(report.Error.Message, "variable 'a' already declared"))

	report = analyze("int main() { int a }")
	be.Equal(t, report.Error.Kind, SyntaxDiagnostic)
	be.Equal(t, report.Error.Message, "syntax error at token '}'")

	report = analyze("int main() { int a = 1 ! 2; };")
	be.Equal(t, report.Error.Kind, LexDiagnostic)
}

func TestEncodeYAML(t *testing.T) {
	report := analyze("int main() { int a = 1; };")

	buffer := &bytes.Buffer{}
	err := report.Encode(buffer, YAMLFormat)
	be.Err(t, err, nil)

	decoded := &Report{}
	err = yaml.Unmarshal(buffer.Bytes(), decoded)
	be.Err(t, err, nil)
	be.Equal(t, decoded.File, "test.mc")
	be.True(t, decoded.Success)
	be.Equal(t, decoded.Symbols, report.Symbols)
	be.True(t, strings.Contains(buffer.String(), "name: a"))
}

func TestEncodeJSON(t *testing.T) {
	report := analyze("int main() { int a = 1 / 0; };")

	buffer := &bytes.Buffer{}
	err := report.Encode(buffer, JSONFormat)
	be.Err(t, err, nil)

	decoded := map[string]interface{}{}
	err = json.Unmarshal(buffer.Bytes(), &decoded)
	be.Err(t, err, nil)
	be.Equal(t, decoded["success"], interface{}(false))

	diagnostic, ok := decoded["error"].(map[string]interface{})
	be.True(t, ok)
	be.Equal(t, diagnostic["kind"], interface{}("semantic"))
	_, ok = decoded["symbols"]
	be.True(t, !ok)
}

func TestRenderText(t *testing.T) {
	SetColor(false)

	buffer := &bytes.Buffer{}
	err := analyze("int main() { int a = 7; int b; };").Encode(buffer, TextFormat)
	be.Err(t, err, nil)

	output := buffer.String()
	be.True(t, strings.Contains(output, "test.mc: 2 symbols"))
	be.True(t, strings.Contains(output, "Name"))
	be.True(t, strings.Contains(output, "7"))

	buffer.Reset()
	err = analyze("int main() { a = 1; };").Encode(buffer, TextFormat)
	be.Err(t, err, nil)
	be.True(t, strings.Contains(buffer.String(), "Semantic Error"))
	be.True(
		t,
		strings.Contains(buffer.String(), "test.mc: semantic error at line"))
}

func TestLoggerLevels(t *testing.T) {
	SetColor(false)

	report := analyze("int main() { int y = 2.5; int x = y / 0; };")
	be.Equal(t, len(report.Notices), 1)

	tests := []struct {
		level       LogLevel
		wantNotice  bool
		wantFailure bool
	}{
		{LogLevelSilent, false, false},
		{LogLevelError, false, true},
		{LogLevelWarning, true, true},
		{LogLevelVerbose, true, true},
	}

	for _, test := range tests {
		buffer := &bytes.Buffer{}
		logger := NewLogger(buffer, test.level, TextFormat)

		err := logger.Report(report)
		be.Err(t, err, nil)

		output := buffer.String()
		be.Equal(t, strings.Contains(output, "Precision Loss"), test.wantNotice)
		be.Equal(t, strings.Contains(output, "Semantic Error"), test.wantFailure)
	}
}

func TestLoggerStructuredIgnoresLevel(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := NewLogger(buffer, LogLevelSilent, JSONFormat)

	err := logger.Report(analyze("int main() { int a; };"))
	be.Err(t, err, nil)
	be.True(t, strings.Contains(buffer.String(), `"success": true`))
}

func TestParseOptions(t *testing.T) {
	format, err := ParseFormat("YAML")
	be.Err(t, err, nil)
	be.Equal(t, format, YAMLFormat)

	_, err = ParseFormat("xml")
	be.Err(t, err, "unknown report format")

	level, err := ParseLogLevel("warning")
	be.Err(t, err, nil)
	be.Equal(t, level, LogLevelWarning)

	_, err = ParseLogLevel("loud")
	be.Err(t, err, "unknown log level")
}

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

func SetColor(enabled bool) {
	if enabled {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}
}

var diagnosticTags = map[DiagnosticKind]string{
	SemanticDiagnostic: "Semantic Error",
	SyntaxDiagnostic:   "Syntax Error",
	LexDiagnostic:      "Lex Error",
}

func writeErrorMessage(output io.Writer, tag string, msg string) error {
	_, err := fmt.Fprintln(
		output,
		ErrorStyleBG.Sprint(tag)+ErrorColorFG.Sprint(" "+msg))
	return err
}

func writeWarningMessage(output io.Writer, tag string, msg string) error {
	_, err := fmt.Fprintln(
		output,
		WarnStyleBG.Sprint(tag)+WarnColorFG.Sprint(" "+msg))
	return err
}

func writeInfoMessage(output io.Writer, tag string, msg string) error {
	_, err := fmt.Fprintln(
		output,
		InfoStyleBG.Sprint(tag)+InfoColorFG.Sprint(" "+msg))
	return err
}

func (report *Report) render(output io.Writer) error {
	return report.renderAtLevel(output, LogLevelVerbose)
}

func (report *Report) renderAtLevel(output io.Writer, level LogLevel) error {
	if level >= LogLevelWarning {
		for _, notice := range report.Notices {
			err := writeWarningMessage(output, "Precision Loss", notice)
			if err != nil {
				return err
			}
		}
	}

	if report.Error != nil {
		if level < LogLevelError {
			return nil
		}

		return writeErrorMessage(
			output,
			diagnosticTags[report.Error.Kind],
			report.File+": "+report.Error.Message)
	}

	if level < LogLevelVerbose {
		return nil
	}

	if !report.Success {
		return writeWarningMessage(output, "Incomplete", report.File)
	}

	err := writeInfoMessage(
		output,
		"Done",
		fmt.Sprintf("%s: %d symbols", report.File, len(report.Symbols)))
	if err != nil {
		return err
	}

	if len(report.Symbols) == 0 {
		return nil
	}

	data := pterm.TableData{
		{"Name", "Type", "Value", "Context", "Line"},
	}
	for _, symbol := range report.Symbols {
		value := symbol.Value
		if !symbol.Initialized {
			value = "-"
		}

		data = append(
			data,
			[]string{
				symbol.Name,
				symbol.Type,
				value,
				strconv.Itoa(symbol.Context),
				strconv.Itoa(symbol.Line),
			})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(output, table)
	return err
}

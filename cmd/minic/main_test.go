package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/pattyshack/minic/report"
)

func runMinic(args ...string) (string, error) {
	output := &bytes.Buffer{}
	rootCmd.SetOut(output)
	rootCmd.SetErr(output)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return output.String(), err
}

func writeFile(t *testing.T, dir string, name string, content string) string {
	path := filepath.Join(dir, name)
	be.Err(t, os.WriteFile(path, []byte(content), 0o644), nil)
	return path
}

func TestVersion(t *testing.T) {
	output, err := runMinic("version")
	be.Err(t, err, nil)
	be.True(t, strings.HasPrefix(output, "minic "))
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	configFile := writeFile(t, dir, "minic.toml", "[report]\nformat = \"json\"\n")
	valid := writeFile(
		t,
		dir,
		"valid.mc",
		"int main() {\n  float x = 1.5;\n  return 0;\n};\n")
	invalid := writeFile(
		t,
		dir,
		"invalid.mc",
		"int main() {\n  int x;\n  int x;\n  return 0;\n};\n")

	output, err := runMinic("check", "--config", configFile, "--no-color", valid)
	be.Err(t, err, nil)

	decoded := &report.Report{}
	be.Err(t, json.Unmarshal([]byte(output), decoded), nil)
	be.True(t, decoded.Success)
	be.Equal(t, len(decoded.Symbols), 1)
	be.Equal(t, decoded.Symbols[0].Name, "x")
	be.Equal(t, decoded.Symbols[0].Value, "1.5")

	output, err = runMinic("check", "--config", configFile, "--no-color", invalid)
	be.Err(t, err, errAnalysisFailed)

	decoded = &report.Report{}
	be.Err(t, json.Unmarshal([]byte(output), decoded), nil)
	be.True(t, !decoded.Success)
	be.True(t, decoded.Error != nil)
	be.Equal(t, decoded.Error.Kind, report.SemanticDiagnostic)

	_, err = runMinic(
		"check",
		"--config", filepath.Join(dir, "absent.toml"),
		"--no-color",
		valid)
	be.Err(t, err, os.ErrNotExist)
}

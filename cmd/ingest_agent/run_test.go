package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonicalCSV = "linkedin_url,first_name,last_name,location,company_name,title\n" +
	"linkedin.com/in/janedoe,Jane,Doe,\"Austin, Texas\",Acme,Engineer\n"

func TestRunCommand_NoFiles(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "run", "--out", t.TempDir())
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no input files")
}

func TestRunCommand_NoOutputDir(t *testing.T) {
	binaryPath := getBinaryPath(t)

	input := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(input, []byte(canonicalCSV), 0644))

	cmd := exec.Command(binaryPath, "run", input)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "output directory is required")
}

func TestRunCommand_MissingInputFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	cmd := exec.Command(binaryPath, "run", filepath.Join(tmpDir, "nope.csv"), "--out", tmpDir)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "input file not found")
}

func TestRunCommand_EndToEnd(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "in.csv")
	require.NoError(t, os.WriteFile(input, []byte(canonicalCSV), 0644))
	outDir := filepath.Join(tmpDir, "output")

	cmd := exec.Command(binaryPath, "run", input, "--out", outDir)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "kept 1 unique candidates")
	assert.FileExists(t, filepath.Join(outDir, "standardized_candidates.csv"))
}

func TestRunCommand_ConfigFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "in.csv")
	require.NoError(t, os.WriteFile(input, []byte(canonicalCSV), 0644))
	outDir := filepath.Join(tmpDir, "output")

	configPath := filepath.Join(tmpDir, "config.json")
	configJSON := `{"files": ["` + input + `"], "output_dir": "` + outDir + `"}`
	require.NoError(t, os.WriteFile(configPath, []byte(configJSON), 0644))

	cmd := exec.Command(binaryPath, "run", "--config", configPath)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.FileExists(t, filepath.Join(outDir, "standardized_candidates.csv"))
}

func TestRunCommand_InvalidConfig(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"unknown_key": true}`), 0644))

	cmd := exec.Command(binaryPath, "run", "--config", configPath)
	_, err := cmd.CombinedOutput()

	assert.Error(t, err)
}

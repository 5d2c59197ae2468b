package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mkravets/repotxt/internal/config"
)

// writeConfigurationFile creates a configuration fixture, with parents.
func writeConfigurationFile(testingInstance *testing.T, filePath string, content string) {
	testingInstance.Helper()
	if mkdirError := os.MkdirAll(filepath.Dir(filePath), 0o755); mkdirError != nil {
		testingInstance.Fatalf("creating configuration directory: %v", mkdirError)
	}
	if writeError := os.WriteFile(filePath, []byte(content), 0o644); writeError != nil {
		testingInstance.Fatalf("writing configuration %s: %v", filePath, writeError)
	}
}

// TestLoadApplicationConfigurationMergesLocalOverGlobal verifies that local
// values override global ones while ignore patterns accumulate.
func TestLoadApplicationConfigurationMergesLocalOverGlobal(testingInstance *testing.T) {
	homeDirectory := testingInstance.TempDir()
	workingDirectory := testingInstance.TempDir()
	testingInstance.Setenv("HOME", homeDirectory)

	writeConfigurationFile(testingInstance,
		filepath.Join(homeDirectory, ".config", "repotxt", "config.yaml"),
		"max_size: 500\nignore:\n  - '*.bak'\ntokens:\n  model: gpt-4o\n")
	writeConfigurationFile(testingInstance,
		filepath.Join(workingDirectory, config.LocalConfigFileName),
		"max_size: 900\nignore:\n  - '*.tmp'\nsummary: true\n")

	configuration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
	})
	if loadError != nil {
		testingInstance.Fatalf("unexpected load error: %v", loadError)
	}

	if configuration.MaxFileSize == nil || *configuration.MaxFileSize != 900 {
		testingInstance.Errorf("max_size: expected local value 900, got %+v", configuration.MaxFileSize)
	}
	if len(configuration.Ignore) != 2 || configuration.Ignore[0] != "*.bak" || configuration.Ignore[1] != "*.tmp" {
		testingInstance.Errorf("ignore: expected accumulated patterns, got %v", configuration.Ignore)
	}
	if configuration.Tokens.Model != "gpt-4o" {
		testingInstance.Errorf("tokens.model: expected global value kept, got %q", configuration.Tokens.Model)
	}
	if configuration.Summary == nil || !*configuration.Summary {
		testingInstance.Error("summary: expected local true")
	}
}

// TestLoadApplicationConfigurationMissingFiles verifies missing files yield a
// zero configuration without error.
func TestLoadApplicationConfigurationMissingFiles(testingInstance *testing.T) {
	testingInstance.Setenv("HOME", testingInstance.TempDir())

	configuration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: testingInstance.TempDir(),
	})
	if loadError != nil {
		testingInstance.Fatalf("unexpected load error: %v", loadError)
	}
	if configuration.MaxFileSize != nil || len(configuration.Ignore) != 0 || configuration.UseGitignore != nil {
		testingInstance.Errorf("expected zero configuration, got %+v", configuration)
	}
}

// TestLoadApplicationConfigurationExplicitPath verifies an explicit --config
// path replaces the local file lookup.
func TestLoadApplicationConfigurationExplicitPath(testingInstance *testing.T) {
	testingInstance.Setenv("HOME", testingInstance.TempDir())
	workingDirectory := testingInstance.TempDir()

	explicitPath := filepath.Join(testingInstance.TempDir(), "custom.yaml")
	writeConfigurationFile(testingInstance, explicitPath, "use_gitignore: true\nclipboard: true\n")
	writeConfigurationFile(testingInstance,
		filepath.Join(workingDirectory, config.LocalConfigFileName),
		"use_gitignore: false\n")

	configuration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: explicitPath,
	})
	if loadError != nil {
		testingInstance.Fatalf("unexpected load error: %v", loadError)
	}
	if configuration.UseGitignore == nil || !*configuration.UseGitignore {
		testingInstance.Error("use_gitignore: expected value from the explicit file")
	}
	if configuration.Clipboard == nil || !*configuration.Clipboard {
		testingInstance.Error("clipboard: expected value from the explicit file")
	}
}

// TestMerge verifies field-level overlay semantics.
func TestMerge(testingInstance *testing.T) {
	baseSize := int64(100)
	overrideSize := int64(200)
	enabled := true

	base := config.ApplicationConfiguration{
		MaxFileSize: &baseSize,
		Ignore:      []string{"*.bak"},
		Output:      "base.txt",
	}
	override := config.ApplicationConfiguration{
		MaxFileSize: &overrideSize,
		Ignore:      []string{"*.tmp"},
		Tokens:      config.TokenConfiguration{Enabled: &enabled},
	}

	merged := base.Merge(override)
	if merged.MaxFileSize == nil || *merged.MaxFileSize != 200 {
		testingInstance.Errorf("max_size: expected override, got %+v", merged.MaxFileSize)
	}
	if len(merged.Ignore) != 2 {
		testingInstance.Errorf("ignore: expected accumulation, got %v", merged.Ignore)
	}
	if merged.Output != "base.txt" {
		testingInstance.Errorf("output: expected base value kept, got %q", merged.Output)
	}
	if merged.Tokens.Enabled == nil || !*merged.Tokens.Enabled {
		testingInstance.Error("tokens.enabled: expected override")
	}
}

// Package config loads application configuration defaults from global and
// local configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mkravets/repotxt/internal/utils"
)

const (
	// LocalConfigFileName is the per-project configuration file name.
	LocalConfigFileName = ".repotxt.yaml"
	// globalConfigDirectoryName is the directory under the user's home
	// holding the global configuration.
	globalConfigDirectoryName = ".config/repotxt"
	// globalConfigFileName is the global configuration file name.
	globalConfigFileName = "config.yaml"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration holds invocation defaults that flags may override.
// Pointer fields distinguish "unset" from an explicit false or zero.
type ApplicationConfiguration struct {
	MaxFileSize  *int64             `mapstructure:"max_size"`
	Ignore       []string           `mapstructure:"ignore"`
	UseGitignore *bool              `mapstructure:"use_gitignore"`
	Summary      *bool              `mapstructure:"summary"`
	Clipboard    *bool              `mapstructure:"clipboard"`
	Output       string             `mapstructure:"output"`
	Tokens       TokenConfiguration `mapstructure:"tokens"`
}

// TokenConfiguration controls token counting defaults.
type TokenConfiguration struct {
	Enabled *bool  `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
}

// LoadApplicationConfiguration merges the global configuration file with the
// local one, local values winning. Missing files are not errors.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, globalConfigDirectoryName, globalConfigFileName)
		globalConfiguration, loadError := loadConfigurationFromPath(globalPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfiguration)
	}

	localPath, resolveError := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveError != nil {
		return ApplicationConfiguration{}, resolveError
	}
	if localPath != "" {
		localConfiguration, loadError := loadConfigurationFromPath(localPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(localConfiguration)
	}

	merged.Ignore = utils.DeduplicatePatterns(merged.Ignore)
	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, error) {
	if explicitPath != "" {
		if filepath.IsAbs(explicitPath) {
			return explicitPath, nil
		}
		return filepath.Join(workingDirectory, explicitPath), nil
	}
	return filepath.Join(workingDirectory, LocalConfigFileName), nil
}

func loadConfigurationFromPath(configurationPath string) (ApplicationConfiguration, error) {
	fileInformation, statError := os.Stat(configurationPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", configurationPath, statError)
	}
	if fileInformation.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", configurationPath)
	}

	reader := viper.New()
	reader.SetConfigFile(configurationPath)
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", configurationPath, readError)
	}
	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", configurationPath, decodeError)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver returning the combined
// configuration. Override ignore patterns are appended, not replaced, so
// global and local exclusions accumulate.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	if override.MaxFileSize != nil {
		result.MaxFileSize = cloneInt64(override.MaxFileSize)
	}
	if len(override.Ignore) > 0 {
		result.Ignore = append(append([]string{}, result.Ignore...), override.Ignore...)
	}
	if override.UseGitignore != nil {
		result.UseGitignore = cloneBool(override.UseGitignore)
	}
	if override.Summary != nil {
		result.Summary = cloneBool(override.Summary)
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	result.Tokens = result.Tokens.merge(override.Tokens)
	return result
}

func (configuration TokenConfiguration) merge(override TokenConfiguration) TokenConfiguration {
	result := configuration
	if override.Enabled != nil {
		result.Enabled = cloneBool(override.Enabled)
	}
	if override.Model != "" {
		result.Model = override.Model
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt64(value *int64) *int64 {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	gitignore "github.com/monochromegane/go-gitignore"
	"github.com/spf13/cobra"

	"github.com/mkravets/repotxt/internal/config"
	"github.com/mkravets/repotxt/internal/render"
	"github.com/mkravets/repotxt/internal/scan"
	"github.com/mkravets/repotxt/internal/services/clipboard"
	"github.com/mkravets/repotxt/internal/tokenizer"
	"github.com/mkravets/repotxt/internal/utils"
)

const (
	maxSizeFlagName   = "max-size"
	ignoreFlagName    = "ignore"
	outputFlagName    = "output"
	outputFlagShort   = "o"
	gitignoreFlagName = "gitignore"
	tokensFlagName    = "tokens"
	modelFlagName     = "model"
	clipboardFlagName = "clipboard"
	summaryFlagName   = "summary"
	configFlagName    = "config"
	versionFlagName   = "version"

	rootUse              = "repotxt [path]"
	rootShortDescription = "generate a text snapshot of a repository"
	rootLongDescription  = `repotxt walks a directory tree, skips ignored and binary-heavy entries,
and writes a single consolidated report: a tree diagram of the layout
followed by the contents of every included text file.`
	rootUsageExample = `  # Snapshot the current directory to stdout
  repotxt

  # Snapshot a project into a file, skipping generated code
  repotxt ./project --ignore '*.gen.go' -o project.txt

  # Respect the project's .gitignore and report token usage
  repotxt ./project --gitignore --tokens`

	versionTemplate = "repotxt version: %s\n"
	defaultPath     = "."

	defaultMaxFileSize = int64(100000)

	maxSizeFlagDescription   = "maximum file size in bytes before content is replaced with a placeholder"
	ignoreFlagDescription    = "additional exclusion pattern (repeatable)"
	outputFlagDescription    = "write the report to this path instead of stdout"
	gitignoreFlagDescription = "also exclude entries matched by the root .gitignore"
	tokensFlagDescription    = "report the token count of the generated report"
	modelFlagDescription     = "tokenizer model used for token counting"
	clipboardFlagDescription = "copy the report to the system clipboard"
	summaryFlagDescription   = "report file and directory totals after the scan"
	configFlagDescription    = "path to a configuration file"
	versionFlagDescription   = "display application version"

	confirmationMessageFormat = "Output written to %s\n"
	summaryMessageFormat      = "%d files, %d directories, %s\n"
	tokenCountMessageFormat   = "Tokens (%s): %d\n"

	warningGitignoreParseFormat  = "Warning: could not parse %s: %v\n"
	warningClipboardFormat       = "Warning: could not copy report to clipboard: %v\n"
	errorWriteOutputFormat       = "writing output to %s: %w"
	errorAbsolutePathFormat      = "resolving absolute path for '%s': %w"
	errorPathMissingFormat       = "path '%s' does not exist"
	errorStatFormat              = "stat failed for '%s': %w"
	errorPathNotDirectoryFormat  = "path '%s' is not a directory"
	errorLoadConfigurationFormat = "loading configuration: %w"
	errorTokenizerFormat         = "initializing tokenizer: %w"

	gitignoreFileName = ".gitignore"
)

// scanOptions captures the effective invocation settings after configuration
// files and flags have been reconciled.
type scanOptions struct {
	maxFileSize     int64
	ignorePatterns  []string
	outputPath      string
	useGitignore    bool
	countTokens     bool
	tokenModel      string
	copyToClipboard bool
	printSummary    bool
}

// Execute runs the repotxt application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool
	var maxFileSize int64 = defaultMaxFileSize
	var ignorePatterns []string
	var outputPath string
	var useGitignore bool
	var countTokens bool
	var tokenModel string = tokenizer.DefaultModel
	var copyToClipboard bool
	var printSummary bool
	var configurationPath string

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}

			applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
				ExplicitFilePath: configurationPath,
			})
			if configurationError != nil {
				return fmt.Errorf(errorLoadConfigurationFormat, configurationError)
			}

			options := reconcileOptions(command, applicationConfiguration, scanOptions{
				maxFileSize:     maxFileSize,
				ignorePatterns:  ignorePatterns,
				outputPath:      outputPath,
				useGitignore:    useGitignore,
				countTokens:     countTokens,
				tokenModel:      tokenModel,
				copyToClipboard: copyToClipboard,
				printSummary:    printSummary,
			})

			rootPath := defaultPath
			if len(arguments) > 0 {
				rootPath = arguments[0]
			}
			return runScan(command, rootPath, options)
		},
	}

	rootCommand.Flags().Int64Var(&maxFileSize, maxSizeFlagName, defaultMaxFileSize, maxSizeFlagDescription)
	rootCommand.Flags().StringArrayVar(&ignorePatterns, ignoreFlagName, nil, ignoreFlagDescription)
	rootCommand.Flags().StringVarP(&outputPath, outputFlagName, outputFlagShort, "", outputFlagDescription)
	rootCommand.Flags().BoolVar(&useGitignore, gitignoreFlagName, false, gitignoreFlagDescription)
	rootCommand.Flags().BoolVar(&countTokens, tokensFlagName, false, tokensFlagDescription)
	rootCommand.Flags().StringVar(&tokenModel, modelFlagName, tokenizer.DefaultModel, modelFlagDescription)
	rootCommand.Flags().BoolVar(&copyToClipboard, clipboardFlagName, false, clipboardFlagDescription)
	rootCommand.Flags().BoolVar(&printSummary, summaryFlagName, false, summaryFlagDescription)
	rootCommand.Flags().StringVar(&configurationPath, configFlagName, "", configFlagDescription)
	rootCommand.Flags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	return rootCommand
}

// reconcileOptions overlays configuration-file defaults with flag values.
// A flag wins only when it was set explicitly on the command line;
// configured ignore patterns are kept in front of flag-supplied ones so the
// final order stays defaults, configuration, command line.
func reconcileOptions(command *cobra.Command, configuration config.ApplicationConfiguration, flagOptions scanOptions) scanOptions {
	options := flagOptions

	if !command.Flags().Changed(maxSizeFlagName) && configuration.MaxFileSize != nil {
		options.maxFileSize = *configuration.MaxFileSize
	}
	options.ignorePatterns = append(append([]string{}, configuration.Ignore...), flagOptions.ignorePatterns...)
	if !command.Flags().Changed(outputFlagName) && configuration.Output != "" {
		options.outputPath = configuration.Output
	}
	if !command.Flags().Changed(gitignoreFlagName) && configuration.UseGitignore != nil {
		options.useGitignore = *configuration.UseGitignore
	}
	if !command.Flags().Changed(tokensFlagName) && configuration.Tokens.Enabled != nil {
		options.countTokens = *configuration.Tokens.Enabled
	}
	if !command.Flags().Changed(modelFlagName) && configuration.Tokens.Model != "" {
		options.tokenModel = configuration.Tokens.Model
	}
	if !command.Flags().Changed(clipboardFlagName) && configuration.Clipboard != nil {
		options.copyToClipboard = *configuration.Clipboard
	}
	if !command.Flags().Changed(summaryFlagName) && configuration.Summary != nil {
		options.printSummary = *configuration.Summary
	}
	return options
}

// runScan executes the scan-filter-classify-render pipeline for rootPath and
// delivers the report to the configured destination.
func runScan(command *cobra.Command, rootPath string, options scanOptions) error {
	absoluteRootPath, validationError := resolveAndValidateRoot(rootPath)
	if validationError != nil {
		return validationError
	}

	scanner := &scan.Scanner{
		IgnorePatterns: scan.CombinedIgnorePatterns(options.ignorePatterns),
		MaxFileSize:    options.maxFileSize,
		Warn: func(message string) {
			fmt.Fprintln(command.ErrOrStderr(), message)
		},
	}
	if options.useGitignore {
		scanner.Gitignore = loadGitignoreMatcher(command, absoluteRootPath)
	}

	rootNode := scanner.Scan(absoluteRootPath)
	report := render.Report(rootNode)

	if options.outputPath != "" {
		if writeError := os.WriteFile(options.outputPath, []byte(report), 0o644); writeError != nil {
			return fmt.Errorf(errorWriteOutputFormat, options.outputPath, writeError)
		}
		fmt.Fprintf(command.OutOrStdout(), confirmationMessageFormat, options.outputPath)
	} else {
		fmt.Fprintln(command.OutOrStdout(), report)
	}

	if options.copyToClipboard {
		if copyError := clipboard.NewService().Copy(report); copyError != nil {
			fmt.Fprintf(command.ErrOrStderr(), warningClipboardFormat, copyError)
		}
	}

	if options.countTokens {
		if tokenError := reportTokenCount(command, report, options.tokenModel); tokenError != nil {
			return tokenError
		}
	}

	if options.printSummary {
		fmt.Fprintf(command.ErrOrStderr(), summaryMessageFormat,
			rootNode.FileCount, rootNode.DirCount, utils.FormatFileSize(rootNode.Size))
	}

	return nil
}

// loadGitignoreMatcher parses the root's .gitignore. A missing file yields a
// nil matcher; a parse failure is reported as a warning, never fatal.
func loadGitignoreMatcher(command *cobra.Command, absoluteRootPath string) gitignore.IgnoreMatcher {
	gitignorePath := filepath.Join(absoluteRootPath, gitignoreFileName)
	if _, statError := os.Stat(gitignorePath); statError != nil {
		return nil
	}
	matcher, parseError := gitignore.NewGitIgnore(gitignorePath)
	if parseError != nil {
		fmt.Fprintf(command.ErrOrStderr(), warningGitignoreParseFormat, gitignorePath, parseError)
		return nil
	}
	return matcher
}

// reportTokenCount counts the report's tokens and prints the result to the
// error stream so the report format on stdout stays untouched.
func reportTokenCount(command *cobra.Command, report string, tokenModel string) error {
	tokenCounter, resolvedModel, counterError := tokenizer.NewCounter(tokenModel)
	if counterError != nil {
		return fmt.Errorf(errorTokenizerFormat, counterError)
	}
	tokenCount, countError := tokenCounter.CountString(report)
	if countError != nil {
		return fmt.Errorf(errorTokenizerFormat, countError)
	}
	fmt.Fprintf(command.ErrOrStderr(), tokenCountMessageFormat, resolvedModel, tokenCount)
	return nil
}

// resolveAndValidateRoot converts the scan path to absolute form and verifies
// it names an existing directory.
func resolveAndValidateRoot(rootPath string) (string, error) {
	absolutePath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return "", fmt.Errorf(errorAbsolutePathFormat, rootPath, absolutePathError)
	}
	cleanPath := filepath.Clean(absolutePath)
	fileInformation, statError := os.Stat(cleanPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return "", fmt.Errorf(errorPathMissingFormat, rootPath)
		}
		return "", fmt.Errorf(errorStatFormat, rootPath, statError)
	}
	if !fileInformation.IsDir() {
		return "", fmt.Errorf(errorPathNotDirectoryFormat, rootPath)
	}
	return cleanPath, nil
}

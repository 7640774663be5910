package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/clashkit/clash-lint/pkg/console"
	"github.com/clashkit/clash-lint/pkg/validator"
	"github.com/sourcegraph/conc/pool"
)

// MaxConcurrentChecks bounds the number of files validated in parallel
const MaxConcurrentChecks = 4

// checkResult pairs a file with its validation outcome
type checkResult struct {
	Index   int
	Path    string
	Source  string
	Result  validator.Result
	ReadErr error
}

// CheckFiles validates each file's YAML syntax and configuration
// shape, printing positioned diagnostics with source context. With
// strict enabled, syntactically valid files are additionally checked
// against the embedded configuration schema. Returns an error when
// any file fails validation.
func CheckFiles(files []string, strict, verbose bool) error {
	if len(files) == 0 {
		return fmt.Errorf("no configuration files given")
	}

	results := checkAll(files, strict, verbose)

	failed := 0
	for _, result := range results {
		if !printCheckResult(result, verbose) {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(results))
	}
	return nil
}

// checkAll validates the given files, in parallel when there is more
// than one.
func checkAll(files []string, strict, verbose bool) []checkResult {
	if len(files) == 1 {
		return []checkResult{checkFile(0, files[0], strict)}
	}

	total := len(files)
	spin := console.NewSpinner(fmt.Sprintf("Validating %d configuration files...", total))
	if !verbose {
		if spin.IsEnabled() {
			spin.Start()
		} else {
			fmt.Println(console.FormatProgressMessage(fmt.Sprintf("Validating %d configuration files...", total)))
		}
	}

	var done atomic.Int32
	p := pool.NewWithResults[checkResult]().WithMaxGoroutines(MaxConcurrentChecks)
	for i, file := range files {
		i, file := i, file // per-iteration copies; go directive is below 1.22
		p.Go(func() checkResult {
			if verbose {
				fmt.Println(console.FormatProgressMessage(fmt.Sprintf("Checking %s...", file)))
			}
			result := checkFile(i, file, strict)
			spin.UpdateMessage(fmt.Sprintf("Validated %d of %d configuration files...", done.Add(1), total))
			return result
		})
	}
	results := p.Wait()
	spin.Stop()

	// Pool results arrive in completion order; report in input order.
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}

// checkFile validates a single file from disk.
func checkFile(index int, path string, strict bool) checkResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return checkResult{Index: index, Path: path, ReadErr: err}
	}
	text := string(data)

	result := validator.ValidateConfigShape(text)
	if result.Valid && strict {
		if strictResult := validator.ValidateStrict(text); !strictResult.Valid {
			result = strictResult
		}
	}

	return checkResult{Index: index, Path: path, Source: text, Result: result}
}

// printCheckResult reports one file's outcome and returns whether the
// file passed.
func printCheckResult(result checkResult, verbose bool) bool {
	if result.ReadErr != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(fmt.Sprintf("failed to read %s: %v", result.Path, result.ReadErr)))
		return false
	}

	if !result.Result.Valid {
		fmt.Fprintln(os.Stderr, console.FormatError(console.LintError{
			Position: console.Position{
				File:   result.Path,
				Line:   result.Result.Line,
				Column: result.Result.Column,
			},
			Type:    "error",
			Message: result.Result.Message,
			Context: contextLines(result.Source, result.Result.Line),
		}))
		return false
	}

	if result.Result.Message != "" {
		for _, warning := range strings.Split(result.Result.Message, "\n") {
			fmt.Println(console.FormatWarningMessage(fmt.Sprintf("%s: %s", result.Path, warning)))
		}
		return true
	}

	fmt.Println(console.FormatSuccessMessage(fmt.Sprintf("%s: configuration is valid", result.Path)))
	return true
}

// contextLines returns a window of source lines centered on the
// 1-based diagnostic line, sized so the console renderer lines up.
func contextLines(text string, line int) []string {
	lines := strings.Split(text, "\n")
	if line < 1 || line > len(lines) {
		return nil
	}
	if line >= 2 && line < len(lines) {
		return lines[line-2 : line+1]
	}
	return []string{lines[line-1]}
}

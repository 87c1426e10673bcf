package cli

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/elevont/prttl/format"
	"github.com/elevont/prttl/rdf"
)

// run formats every target in place, or reports unformatted targets
// when checking. "-" formats standard input onto standard output.
func run(ctx context.Context, targets []string, opts *format.Options) error {
	logger := loggerFromContext(ctx)

	var files []string
	for _, target := range targets {
		if target == "-" {
			if err := formatStream(os.Stdin, os.Stdout, opts); err != nil {
				return err
			}
			continue
		}
		found, err := collectFiles(target)
		if err != nil {
			return err
		}
		files = append(files, found...)
	}

	checkFailed := false
	for _, file := range files {
		changed, err := formatFile(file, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if changed && opts.Check {
			logger.Error("file is not formatted", "file", file)
			checkFailed = true
		} else if changed {
			logger.Debug("rewrote file", "file", file)
		}
	}
	if checkFailed {
		return ErrCheckFailed
	}
	return nil
}

// collectFiles resolves one command line target to Turtle files. A
// directory is walked recursively for files with a .ttl extension.
func collectFiles(target string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{target}, nil
	}
	var files []string
	err = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".ttl" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// formatFile rewrites one file in place, or prints a diff when
// checking. It reports whether the file deviated from the canonical
// form.
func formatFile(path string, opts *format.Options) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	original := string(data)
	formatted, err := format.FormatString(original, opts)
	if err != nil {
		return false, err
	}
	if formatted == original {
		return false, nil
	}
	if opts.Check {
		diff, err := unifiedDiff(path, original, formatted)
		if err != nil {
			return true, err
		}
		fmt.Print(diff)
		return true, nil
	}
	return true, os.WriteFile(path, []byte(formatted), 0o644)
}

func formatStream(in io.Reader, out io.Writer, opts *format.Options) error {
	input, err := rdf.ParseTurtle(in)
	if err != nil {
		return err
	}
	formatted, err := format.Format(input, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, formatted)
	return err
}

func unifiedDiff(path, original, formatted string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(formatted),
		FromFile: path,
		ToFile:   path + " (formatted)",
		Context:  3,
	})
}

// Package stitch concatenates the regular files of a single directory into
// one delimited text document.
package stitch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"
)

// Run stitches every regular file found directly under args.SourceDir into a
// single document at args.Output. Entries are processed in ascending
// lexicographic order by filename; non-regular entries are enumerated on the
// progress channel but produce no output block. A file that cannot be read
// as UTF-8 text is annotated inline and never aborts the run.
//
// The output file is neither created nor modified when the source directory
// is missing.
func Run(args Arguments, fsys billy.Filesystem, stdout io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if stdout == nil {
		stdout = os.Stdout
	}

	logger.Info("Starting stitch run",
		zap.String("sourceDir", args.SourceDir),
		zap.String("output", args.Output))

	info, err := fsys.Stat(args.SourceDir)
	if err != nil {
		logger.Error("Source directory not found", zap.String("sourceDir", args.SourceDir), zap.Error(err))
		return fmt.Errorf("directory %q not found: %w", args.SourceDir, err)
	}
	if !info.IsDir() {
		logger.Error("Source path is not a directory", zap.String("sourceDir", args.SourceDir))
		return fmt.Errorf("path %q is not a directory", args.SourceDir)
	}

	entries, err := fsys.ReadDir(args.SourceDir)
	if err != nil {
		logger.Error("Failed to list source directory", zap.String("sourceDir", args.SourceDir), zap.Error(err))
		return fmt.Errorf("failed to list directory %q: %w", args.SourceDir, err)
	}

	// ReadDir order is not guaranteed across billy backends.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	outFile, err := fsys.Create(args.Output)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("output", args.Output), zap.Error(err))
		return fmt.Errorf("failed to create output file %q: %w", args.Output, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("output", args.Output), zap.Error(closeErr))
		}
	}()

	writer := bufio.NewWriter(outFile)
	processed := 0

	for _, entry := range entries {
		entryPath := joinEntryPath(args.SourceDir, entry.Name())
		fmt.Fprintf(stdout, "Processing: %s\n", entryPath)

		if !entry.Mode().IsRegular() {
			logger.Debug("Skipping non-regular entry", zap.String("path", entryPath))
			continue
		}

		block := renderEntry(fsys, readPath(args.SourceDir, entry.Name()), entryPath, logger)
		if _, err := writer.WriteString(block); err != nil {
			logger.Error("Failed to write entry block",
				zap.String("path", entryPath),
				zap.String("output", args.Output),
				zap.Error(err))
			return fmt.Errorf("failed to write block for %q: %w", entryPath, err)
		}
		processed++
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("output", args.Output), zap.Error(err))
		return fmt.Errorf("failed to flush output %q: %w", args.Output, err)
	}

	fmt.Fprintf(stdout, "Combined all files into '%s'\n", args.Output)
	logger.Info("Stitch run completed",
		zap.String("output", args.Output),
		zap.Int("totalEntries", len(entries)),
		zap.Int("processedFiles", processed))
	return nil
}

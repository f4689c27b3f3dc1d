package stitch

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"
)

// renderEntry builds the output block for one regular file: path header,
// delimiter line, the file's content, newline, closing delimiter line. An
// unreadable file yields a diagnostic line in place of the content so the
// run can continue past it.
func renderEntry(fsys billy.Filesystem, filePath, displayPath string, logger *zap.Logger) string {
	var block strings.Builder
	block.WriteString(displayPath + "\n" + Delimiter + "\n")

	content, err := readTextFile(fsys, filePath)
	if err != nil {
		logger.Warn("Could not read file",
			zap.String("path", displayPath),
			zap.Error(err))
		block.WriteString(fmt.Sprintf("\n--- error: could not read file '%s': %v ---\n", displayPath, err))
	} else {
		block.WriteString(content)
	}

	block.WriteString("\n" + Delimiter + "\n")
	return block.String()
}

// readTextFile reads a file fully and verifies its bytes decode as UTF-8
// text, so binary content never lands verbatim in the stitched document.
func readTextFile(fsys billy.Filesystem, path string) (string, error) {
	raw, err := util.ReadFile(fsys, path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("content is not valid UTF-8")
	}
	return string(raw), nil
}

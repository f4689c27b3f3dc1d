package stitch

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRenderEntry(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "src/a.txt", []byte("hello"), 0o644))

	block := renderEntry(fsys, "src/a.txt", "./src/a.txt", zap.NewNop())
	require.Equal(t, "./src/a.txt\n---\nhello\n---\n", block)
}

func TestRenderEntryMissingFile(t *testing.T) {
	fsys := memfs.New()

	block := renderEntry(fsys, "src/gone.txt", "./src/gone.txt", zap.NewNop())
	require.Contains(t, block, "--- error: could not read file './src/gone.txt':")
	// The diagnostic replaces the content but the block stays well formed.
	require.Regexp(t, `^\./src/gone\.txt\n---\n\n--- error: .* ---\n\n---\n$`, block)
}

func TestReadTextFileRejectsInvalidUTF8(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "blob.bin", []byte{0xc3, 0x28}, 0o644))

	_, err := readTextFile(fsys, "blob.bin")
	require.ErrorContains(t, err, "not valid UTF-8")
}

func TestReadTextFileAcceptsMultibyteUTF8(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "jp.txt", []byte("こんにちは"), 0o644))

	content, err := readTextFile(fsys, "jp.txt")
	require.NoError(t, err)
	require.Equal(t, "こんにちは", content)
}

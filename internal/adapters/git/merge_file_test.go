package git

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflicts(t *testing.T) {
	tools := NewFileTools()
	ctx := context.Background()

	tests := []struct {
		name     string
		base     string
		left     string
		right    string
		expected int
	}{
		{"identical edits", "a\nb\nc\n", "a\nX\nc\n", "a\nX\nc\n", 0},
		{"disjoint edits", "a\nb\nc\nd\ne\n", "A\nb\nc\nd\ne\n", "a\nb\nc\nd\nE\n", 0},
		{"same line", "a\nb\nc\n", "a\nL\nc\n", "a\nR\nc\n", 1},
		{"add/add", "", "x\n", "y\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tools.Conflicts(ctx, []byte(tt.base), []byte(tt.left), []byte(tt.right))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestDiffSize(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.java")
	b := filepath.Join(dir, "b.java")
	require.NoError(t, os.WriteFile(a, []byte("one\ntwo\nthree\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("one\n2\nthree\nfour\n"), 0644))

	size, err := NewFileTools().DiffSize(context.Background(), a, b)
	require.NoError(t, err)
	// two -> 2 is one deletion and one insertion, plus the added line
	assert.Equal(t, 3, size)

	size, err = NewFileTools().DiffSize(context.Background(), a, a)
	require.NoError(t, err)
	assert.Equal(t, 0, size)
}

func TestParseNumstat(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected int
	}{
		{"empty", "", 0},
		{"single", "3\t2\ta => b\n", 5},
		{"binary", "-\t-\tblob.bin\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := parseNumstat(tt.output)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}

	_, err := parseNumstat("x\ty\tfile\n")
	assert.Error(t, err)
}

func TestHashFile_MatchesGitHashObject(t *testing.T) {
	r := setupTestRepo(t)
	path := filepath.Join(r.dir, "README.md")

	hash, err := NewFileTools().HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, r.git("hash-object", "README.md"), hash)

	_, err = NewFileTools().HashFile(filepath.Join(r.dir, "missing"))
	assert.Error(t, err)
}

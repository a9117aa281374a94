package bytecode

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/ports"
	portsmocks "github.com/renato0307/mergebench/internal/ports/mocks"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestLocate_FindsNestedClasses(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src", "main", "java", "se", "kth", "App.java")
	require.NoError(t, os.MkdirAll(filepath.Dir(src), 0755))
	require.NoError(t, os.WriteFile(src, []byte("// header\npackage se.kth;\n\nclass App {}\n"), 0644))

	target := filepath.Join(dir, "target")
	touch(t, filepath.Join(target, "classes", "se", "kth", "App.class"))
	touch(t, filepath.Join(target, "classes", "se", "kth", "App$Inner.class"))
	touch(t, filepath.Join(target, "classes", "se", "kth", "AppTest.class"))

	found, err := NewJavapEvaluator(nil, "", 0).Locate(src, target)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(target, "classes", "se", "kth", "App.class"),
		filepath.Join(target, "classes", "se", "kth", "App$Inner.class"),
	}, found)
}

func TestLocate_DefaultPackage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Main.java")
	require.NoError(t, os.WriteFile(src, []byte("class Main {}\n"), 0644))
	touch(t, filepath.Join(dir, "target", "classes", "Main.class"))

	found, err := NewJavapEvaluator(nil, "", 0).Locate(src, filepath.Join(dir, "target"))

	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestEvaluate_CountsEqualListings(t *testing.T) {
	expectedDir := t.TempDir()
	replayedDir := t.TempDir()

	touch(t, filepath.Join(expectedDir, "classes", "A.class"))
	touch(t, filepath.Join(expectedDir, "classes", "B.class"))
	touch(t, filepath.Join(expectedDir, "classes", "C.class"))
	touch(t, filepath.Join(replayedDir, "classes", "A.class"))
	touch(t, filepath.Join(replayedDir, "classes", "B.class"))
	// C.class is missing from the replayed build

	listing := func(body string) ports.ProcessResult {
		return ports.ProcessResult{Stdout: []byte("Compiled from \"X.java\"\nclass X {\n" + body + "\n}\n")}
	}

	runner := portsmocks.NewMockProcessRunner(t)
	runner.EXPECT().Run(mock.Anything, mock.MatchedBy(func(c ports.Command) bool {
		return filepath.Base(c.Args[len(c.Args)-1]) == "A.class"
	})).Return(listing("  0: aload_0"), nil)
	runner.EXPECT().Run(mock.Anything, mock.MatchedBy(func(c ports.Command) bool {
		return c.Args[len(c.Args)-1] == filepath.Join(expectedDir, "classes", "B.class")
	})).Return(listing("  0: iconst_1"), nil)
	runner.EXPECT().Run(mock.Anything, mock.MatchedBy(func(c ports.Command) bool {
		return c.Args[len(c.Args)-1] == filepath.Join(replayedDir, "classes", "B.class")
	})).Return(listing("  0: iconst_2"), nil)

	expected := []domain.ExpectedClassfile{}
	for _, name := range []string{"A.class", "B.class", "C.class"} {
		expected = append(expected, domain.ExpectedClassfile{
			CopyAbsPath:     filepath.Join(expectedDir, "classes", name),
			CopyBaseDir:     expectedDir,
			OriginalRelPath: filepath.Join("classes", name),
		})
	}

	n := NewJavapEvaluator(runner, "", 0).Evaluate(context.Background(), replayedDir, expected)

	assert.Equal(t, 1, n)
}

func TestNormalize(t *testing.T) {
	a := `Classfile /tmp/a/App.class
  Last modified 1 Jan 2024; size 300 bytes
Compiled from "App.java"
class App {
  void f();
    Code:
       0: aload_0
       1: checkcast     #7                  // class Foo
       4: checkcast     #7                  // class Foo
       7: return
}`
	b := `Compiled from "App.java"
class App {
  void f();
    Code:
       0: aload_0
       1: checkcast     #7                  // class Foo
       4: return
}`

	assert.Equal(t, Normalize(b), Normalize(a))
	assert.NotEqual(t, Normalize(b), Normalize("class App {}"))
}

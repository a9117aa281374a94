package bytecode

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/logging"
	"github.com/renato0307/mergebench/internal/ports"
)

var (
	packagePattern = regexp.MustCompile(`(?m)^\s*package\s+([\w.]+)\s*;`)
	offsetPattern  = regexp.MustCompile(`^\s*\d+:\s+`)
)

// ClassesDir is where Maven puts compiled main classes inside the build output
const ClassesDir = "classes"

// JavapEvaluator implements ports.BytecodeEvaluator by disassembling
// classfiles with javap and comparing the normalized listings
type JavapEvaluator struct {
	binary  string
	runner  ports.ProcessRunner
	timeout time.Duration
}

// Compile-time interface verification
var _ ports.BytecodeEvaluator = (*JavapEvaluator)(nil)

// NewJavapEvaluator creates an evaluator. An empty binary means "javap".
func NewJavapEvaluator(runner ports.ProcessRunner, binary string, timeout time.Duration) *JavapEvaluator {
	if binary == "" {
		binary = "javap"
	}
	return &JavapEvaluator{binary: binary, runner: runner, timeout: timeout}
}

// Locate finds the classfiles compiled from a Java source file, including
// nested and anonymous classes, under outputDir/classes
func (e *JavapEvaluator) Locate(sourceFile, outputDir string) ([]string, error) {
	src, err := os.ReadFile(sourceFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}

	pkgDir := ""
	if m := packagePattern.FindSubmatch(src); m != nil {
		pkgDir = filepath.FromSlash(strings.ReplaceAll(string(m[1]), ".", "/"))
	}

	className := strings.TrimSuffix(filepath.Base(sourceFile), filepath.Ext(sourceFile))
	classDir := filepath.Join(outputDir, ClassesDir, pkgDir)

	var found []string
	for _, pattern := range []string{className + ".class", className + "$*.class"} {
		matches, err := filepath.Glob(filepath.Join(classDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to glob classfiles: %w", err)
		}
		found = append(found, matches...)
	}

	logging.Logger.Debug("Located classfiles", "source", sourceFile, "count", len(found))
	return found, nil
}

// Evaluate counts the expected classfiles whose replayed counterpart
// disassembles to the same normalized listing
func (e *JavapEvaluator) Evaluate(ctx context.Context, replayedDir string, expected []domain.ExpectedClassfile) int {
	equal := 0
	for _, classfile := range expected {
		replayed := filepath.Join(replayedDir, classfile.OriginalRelPath)
		if _, err := os.Stat(replayed); err != nil {
			logging.Logger.Info("Replayed classfile missing", "classfile", classfile.OriginalRelPath)
			continue
		}

		want, err := e.disassemble(ctx, classfile.CopyAbsPath)
		if err != nil {
			logging.Logger.Warn("Failed to disassemble expected classfile", "error", err, "classfile", classfile.CopyAbsPath)
			continue
		}
		got, err := e.disassemble(ctx, replayed)
		if err != nil {
			logging.Logger.Warn("Failed to disassemble replayed classfile", "error", err, "classfile", replayed)
			continue
		}

		if want == got {
			equal++
		} else {
			logging.Logger.Info("Classfile differs from expected", "classfile", classfile.OriginalRelPath)
		}
	}
	return equal
}

func (e *JavapEvaluator) disassemble(ctx context.Context, classfile string) (string, error) {
	result, err := e.runner.Run(ctx, ports.Command{
		Name:    e.binary,
		Args:    []string{"-c", "-p", classfile},
		Timeout: e.timeout,
	})
	if err != nil {
		return "", err
	}
	if result.TimedOut {
		return "", fmt.Errorf("javap: %w", domain.ErrTimedOut)
	}
	if result.ExitCode != 0 {
		return "", fmt.Errorf("javap exited with %d: %s", result.ExitCode, string(result.Stderr))
	}
	return Normalize(string(result.Stdout)), nil
}

// Normalize strips what differs between two compilations of the same code:
// file headers, instruction offsets and the duplicate checkcasts some
// compilers emit
func Normalize(listing string) string {
	var lines []string
	previous := ""
	for _, line := range strings.Split(listing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" ||
			strings.HasPrefix(trimmed, "Compiled from") ||
			strings.HasPrefix(trimmed, "Classfile") ||
			strings.HasPrefix(trimmed, "Last modified") ||
			strings.HasPrefix(trimmed, "MD5 checksum") ||
			strings.HasPrefix(trimmed, "SHA-256 checksum") {
			continue
		}

		line = offsetPattern.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "checkcast") && line == previous {
			continue
		}
		lines = append(lines, line)
		previous = line
	}
	return strings.Join(lines, "\n")
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePathName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"flat file", "Main.java", "Main.java"},
		{"nested path", "src/main/java/App.java", "src_main_java_App.java"},
		{"leading slash", "/abs/File.java", "abs_File.java"},
		{"spaces", "my dir/My File.java", "my_dir_My_File.java"},
		{"special chars", "a$b/c#d.txt", "ab_cd.txt"},
		{"parent traversal", "../../etc/passwd", "._._etc_passwd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizePathName(tt.input))
		})
	}
}

func TestSanitizeMergeCmd(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"spork", "spork"},
		{"/usr/local/bin/spork", "spork"},
		{"java -jar spork.jar", "java_-jar_spork.jar"},
		{"/opt/tools/spork --git-mode", "spork_--git-mode"},
		{"git merge-file", "git_merge-file"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeMergeCmd(tt.input))
		})
	}
}

func TestParseMergeOutcome(t *testing.T) {
	for _, outcome := range []MergeOutcome{OutcomeConflict, OutcomeFail, OutcomeSuccess} {
		parsed, err := ParseMergeOutcome(string(outcome))
		assert.NoError(t, err)
		assert.Equal(t, outcome, parsed)
	}

	_, err := ParseMergeOutcome("merged")
	var invalid *InvalidValueError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "outcome", invalid.Field)
}

func TestIsSkippable(t *testing.T) {
	assert.True(t, IsSkippable(ErrNoMergeBase))
	assert.True(t, IsSkippable(ErrAmbiguousMergeBase))
	assert.True(t, IsSkippable(ErrExpectedBuildFailed))
	assert.False(t, IsSkippable(ErrHeaderMismatch))
	assert.False(t, IsSkippable(ErrRepositoryNotFound))
}

func TestNewFileMergeMetainfo_AddAdd(t *testing.T) {
	fm := FileMerge{
		Expected: Blob{Hash: "e1", Path: "A.java"},
		Left:     Blob{Hash: "l1", Path: "A.java"},
		Right:    Blob{Hash: "r1", Path: "A.java"},
		Scenario: MergeScenario{
			Base:     Commit{Hash: "b"},
			Expected: Commit{Hash: "e"},
			Left:     Commit{Hash: "l"},
			Right:    Commit{Hash: "r"},
		},
	}

	meta := NewFileMergeMetainfo(fm)

	assert.False(t, meta.HasBase())
	assert.Empty(t, meta.BaseBlob)
	assert.Equal(t, "e", meta.MergeCommit)
	assert.Equal(t, SerializableMergeScenario{Base: "b", Expected: "e", Left: "l", Right: "r"}, meta.Scenario())
}

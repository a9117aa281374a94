package mergetool

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/mergebench/internal/domain"
	"github.com/renato0307/mergebench/internal/ports"
	portsmocks "github.com/renato0307/mergebench/internal/ports/mocks"
)

func TestMerge_BuildsCommandLine(t *testing.T) {
	runner := portsmocks.NewMockProcessRunner(t)
	runner.EXPECT().Run(mock.Anything, ports.Command{
		Name:    "java",
		Args:    []string{"-jar", "spork.jar", "L.java", "B.java", "R.java", "-o", "out.java"},
		Timeout: 5 * time.Minute,
	}).Return(ports.ProcessResult{ExitCode: 1}, nil)

	tool := NewTool(runner, 5*time.Minute)

	code, err := tool.Merge(context.Background(), "java -jar spork.jar", "L.java", "B.java", "R.java", "out.java")

	require.NoError(t, err)
	assert.Equal(t, 1, code)
}

func TestMerge_TimeoutIsAnError(t *testing.T) {
	runner := portsmocks.NewMockProcessRunner(t)
	runner.EXPECT().Run(mock.Anything, mock.Anything).
		Return(ports.ProcessResult{ExitCode: -1, TimedOut: true}, nil)

	tool := NewTool(runner, time.Second)

	_, err := tool.Merge(context.Background(), "spork", "L", "B", "R", "O")

	require.ErrorIs(t, err, domain.ErrTimedOut)
}

func TestMerge_StartFailure(t *testing.T) {
	runner := portsmocks.NewMockProcessRunner(t)
	runner.EXPECT().Run(mock.Anything, mock.Anything).
		Return(ports.ProcessResult{}, errors.New("not found"))

	tool := NewTool(runner, 0)

	code, err := tool.Merge(context.Background(), "missing-tool", "L", "B", "R", "O")

	require.Error(t, err)
	assert.Equal(t, -1, code)
}

func TestMerge_EmptyCommand(t *testing.T) {
	tool := NewTool(nil, 0)

	_, err := tool.Merge(context.Background(), "  ", "L", "B", "R", "O")

	require.Error(t, err)
}

package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lexmod.dev/pkg/lexmod/internal/domain"
	domainmocks "lexmod.dev/pkg/lexmod/internal/domain/mocks"
	m "lexmod.dev/pkg/lexmod/internal/model"
)

func TestPruneCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newPruneCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Prune", mock.Anything, mock.MatchedBy(func(args domain.PruneArgs) bool {
		return len(args.Paths) == 2 &&
			args.Paths[0] == m.Path("./lib") &&
			args.Paths[1] == m.Path("./src")
	})).Return(nil)

	cmd.SetArgs([]string{"prune", "./lib", "./src"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestPruneCmd_OutputFlag(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newPruneCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Prune", mock.Anything, mock.MatchedBy(func(args domain.PruneArgs) bool {
		return args.Reports == m.Path(".lexmod-reports")
	})).Return(nil)

	cmd.SetArgs([]string{"prune", "-o", ".lexmod-reports", "./..."})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestNewPruneCmd(t *testing.T) {
	cmd := newPruneCmd()

	assert.Equal(t, "prune [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, pruneLongDescription, cmd.Long)
}

package services

import (
	"context"

	"github.com/Tomas-vilte/matelint/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockGitService struct {
	mock.Mock
}

func (m *MockGitService) RepoRoot(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) CommitsInRange(ctx context.Context, from, to string) ([]models.GitCommit, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GitCommit), args.Error(1)
}

func (m *MockGitService) LastCommit(ctx context.Context) (models.GitCommit, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.GitCommit), args.Error(1)
}

func (m *MockGitService) ReadMessageFile(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) InstallHook(ctx context.Context, force bool) (string, error) {
	args := m.Called(ctx, force)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) UninstallHook(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

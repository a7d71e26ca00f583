package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/go-semcommit/internal/defaults"
	"github.com/riskibarqy/go-semcommit/internal/git"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Status(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockRepo) StageAll(ctx context.Context) (git.Result, error) {
	args := m.Called(ctx)
	return args.Get(0).(git.Result), args.Error(1)
}

func (m *mockRepo) Commit(ctx context.Context, message string) (git.Result, error) {
	args := m.Called(ctx, message)
	return args.Get(0).(git.Result), args.Error(1)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Load() defaults.Record {
	return m.Called().Get(0).(defaults.Record)
}

func (m *mockStore) Save(rec defaults.Record) error {
	return m.Called(rec).Error(0)
}

type mockPrompter struct {
	mock.Mock
}

func (m *mockPrompter) Confirm(question string) (bool, error) {
	args := m.Called(question)
	return args.Bool(0), args.Error(1)
}

func (m *mockPrompter) Select(title string, items []string, cursor int) (int, error) {
	args := m.Called(title, items, cursor)
	return args.Int(0), args.Error(1)
}

func (m *mockPrompter) Input(label, initial string) (string, error) {
	args := m.Called(label, initial)
	return args.String(0), args.Error(1)
}

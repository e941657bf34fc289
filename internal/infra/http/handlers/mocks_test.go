package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/parlamentares/internal/entity"
	"github.com/xavierca1/parlamentares/internal/usecase"
)

type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Execute(ctx context.Context, name string) ([]entity.Legislator, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Legislator), args.Error(1)
}

type MockDeputySource struct {
	mock.Mock
}

func (m *MockDeputySource) SearchLegislators(ctx context.Context, name string) ([]entity.Deputy, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Deputy), args.Error(1)
}

func (m *MockDeputySource) GetProfile(ctx context.Context, id int64) (*entity.DeputyProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DeputyProfile), args.Error(1)
}

func (m *MockDeputySource) GetRecentVotes(ctx context.Context, id int64, limit int) ([]entity.VoteRecord, error) {
	args := m.Called(ctx, id, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VoteRecord), args.Error(1)
}

func (m *MockDeputySource) GetAuthoredBills(ctx context.Context, id int64, limit int) ([]entity.BillSummary, error) {
	args := m.Called(ctx, id, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.BillSummary), args.Error(1)
}

type MockSenatorSource struct {
	mock.Mock
}

func (m *MockSenatorSource) SearchLegislators(ctx context.Context, name string) ([]entity.Senator, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Senator), args.Error(1)
}

func (m *MockSenatorSource) GetSenator(ctx context.Context, id string) (*entity.Senator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Senator), args.Error(1)
}

func (m *MockSenatorSource) GetRecentVotes(ctx context.Context, id string, limit int) ([]entity.VoteRecord, error) {
	args := m.Called(ctx, id, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VoteRecord), args.Error(1)
}

type MockDeputyPanel struct {
	mock.Mock
}

func (m *MockDeputyPanel) Execute(ctx context.Context, in usecase.DeputyPanelInput) (*usecase.DeputyPanelOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.DeputyPanelOutput), args.Error(1)
}

type MockSenatorPanel struct {
	mock.Mock
}

func (m *MockSenatorPanel) Execute(ctx context.Context, in usecase.SenatorPanelInput) (*usecase.SenatorPanelOutput, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.SenatorPanelOutput), args.Error(1)
}

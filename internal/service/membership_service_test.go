package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"gymcore/internal/cache"
	apperrors "gymcore/internal/errors"
	"gymcore/internal/model"
)

// MockMembershipRepository is a mock implementation of MembershipRepository.
type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) Create(ctx context.Context, membership *model.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockMembershipRepository) UpdateLatestForUser(ctx context.Context, userID, planID uint, joinDate, expiryDate time.Time, status string) (int64, error) {
	args := m.Called(ctx, userID, planID, joinDate, expiryDate, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMembershipRepository) UpdateStatus(ctx context.Context, id uint, status string) (int64, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMembershipRepository) FindByID(ctx context.Context, id uint) (*model.Membership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Membership), args.Error(1)
}

func (m *MockMembershipRepository) FindLatestByUser(ctx context.Context, userID uint) (*model.Membership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Membership), args.Error(1)
}

func (m *MockMembershipRepository) List(ctx context.Context) ([]model.Membership, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Membership), args.Error(1)
}

// MockPlanRepository is a mock implementation of PlanRepository.
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Create(ctx context.Context, plan *model.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) FirstOrCreate(ctx context.Context, plan *model.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepository) FindByID(ctx context.Context, id uint) (*model.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Plan), args.Error(1)
}

func (m *MockPlanRepository) List(ctx context.Context) ([]model.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Plan), args.Error(1)
}

// noCache is a nil client: every operation degrades to a miss.
var noCache *cache.Client

func newMembershipServiceAt(membershipRepo *MockMembershipRepository, planRepo *MockPlanRepository, now time.Time) *membershipService {
	svc := NewMembershipService(membershipRepo, planRepo, noCache).(*membershipService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestMembershipService_CreateOrExtend_ExpiryComputation(t *testing.T) {
	// join 2024-01-01 with a 30-day plan yields expiry 2024-01-31
	now := time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)
	join := now.Truncate(24 * time.Hour)
	expiry := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	plan := &model.Plan{ID: 2, Name: "Basic", DurationDays: 30, Price: decimal.NewFromInt(29)}

	planRepo := new(MockPlanRepository)
	planRepo.On("FindByID", mock.Anything, uint(2)).Return(plan, nil)

	membershipRepo := new(MockMembershipRepository)
	membershipRepo.On("UpdateLatestForUser", mock.Anything, uint(7), uint(2), join, expiry, model.MembershipStatusActive).
		Return(int64(0), nil)
	membershipRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Membership")).
		Run(func(args mock.Arguments) {
			m := args.Get(1).(*model.Membership)
			assert.Equal(t, join, m.JoinDate)
			assert.Equal(t, expiry, m.ExpiryDate)
			assert.Equal(t, model.MembershipStatusActive, m.Status)
		}).
		Return(nil)

	svc := newMembershipServiceAt(membershipRepo, planRepo, now)

	m, err := svc.CreateOrExtend(context.Background(), 7, 2)
	assert.NoError(t, err)
	assert.Equal(t, expiry, m.ExpiryDate)
	membershipRepo.AssertExpectations(t)
	planRepo.AssertExpectations(t)
}

func TestMembershipService_CreateOrExtend_UpdatesExistingRow(t *testing.T) {
	now := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	plan := &model.Plan{ID: 3, Name: "Standard", DurationDays: 90, Price: decimal.NewFromInt(79)}
	existing := &model.Membership{ID: 11, UserID: 7, PlanID: 3, Status: model.MembershipStatusActive}

	planRepo := new(MockPlanRepository)
	planRepo.On("FindByID", mock.Anything, uint(3)).Return(plan, nil)

	membershipRepo := new(MockMembershipRepository)
	membershipRepo.On("UpdateLatestForUser", mock.Anything, uint(7), uint(3), mock.Anything, mock.Anything, model.MembershipStatusActive).
		Return(int64(1), nil)
	membershipRepo.On("FindLatestByUser", mock.Anything, uint(7)).Return(existing, nil)

	svc := newMembershipServiceAt(membershipRepo, planRepo, now)

	m, err := svc.CreateOrExtend(context.Background(), 7, 3)
	assert.NoError(t, err)
	assert.Equal(t, existing, m)
	// A second call for the same user must not insert a second row.
	membershipRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMembershipService_CreateOrExtend_PlanNotFound(t *testing.T) {
	planRepo := new(MockPlanRepository)
	planRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	membershipRepo := new(MockMembershipRepository)

	svc := newMembershipServiceAt(membershipRepo, planRepo, time.Now())

	m, err := svc.CreateOrExtend(context.Background(), 7, 99)
	assert.ErrorIs(t, err, apperrors.ErrPlanNotFound)
	assert.Nil(t, m)
	// No write may happen when the plan lookup fails.
	membershipRepo.AssertNotCalled(t, "UpdateLatestForUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	membershipRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMembershipService_ChangePlan_RequiresExistingMembership(t *testing.T) {
	plan := &model.Plan{ID: 2, Name: "Basic", DurationDays: 30, Price: decimal.NewFromInt(29)}

	planRepo := new(MockPlanRepository)
	planRepo.On("FindByID", mock.Anything, uint(2)).Return(plan, nil)

	membershipRepo := new(MockMembershipRepository)
	membershipRepo.On("UpdateLatestForUser", mock.Anything, uint(7), uint(2), mock.Anything, mock.Anything, model.MembershipStatusActive).
		Return(int64(0), nil)

	svc := newMembershipServiceAt(membershipRepo, planRepo, time.Now())

	m, err := svc.ChangePlan(context.Background(), 7, 2)
	assert.ErrorIs(t, err, apperrors.ErrMembershipNotFound)
	assert.Nil(t, m)
	membershipRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMembershipService_Cancel(t *testing.T) {
	existing := &model.Membership{ID: 11, UserID: 7, Status: model.MembershipStatusActive}

	membershipRepo := new(MockMembershipRepository)
	membershipRepo.On("FindByID", mock.Anything, uint(11)).Return(existing, nil)
	membershipRepo.On("UpdateStatus", mock.Anything, uint(11), model.MembershipStatusCancelled).
		Return(int64(1), nil)

	svc := newMembershipServiceAt(membershipRepo, new(MockPlanRepository), time.Now())

	assert.NoError(t, svc.Cancel(context.Background(), 11))
	membershipRepo.AssertExpectations(t)
}

func TestMembershipService_Cancel_NotFound(t *testing.T) {
	membershipRepo := new(MockMembershipRepository)
	membershipRepo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := newMembershipServiceAt(membershipRepo, new(MockPlanRepository), time.Now())

	assert.ErrorIs(t, svc.Cancel(context.Background(), 404), apperrors.ErrMembershipNotFound)
}

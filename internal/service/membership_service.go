package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gymcore/internal/cache"
	apperrors "gymcore/internal/errors"
	"gymcore/internal/model"
	"gymcore/internal/repository"
)

const (
	planCacheTTL       = time.Hour
	membershipCacheTTL = 5 * time.Minute
)

// MembershipService handles the membership lifecycle: plan lookup, expiry
// computation and the update-latest-else-insert write path.
type MembershipService interface {
	CreateOrExtend(ctx context.Context, userID, planID uint) (*model.Membership, error)
	ChangePlan(ctx context.Context, userID, planID uint) (*model.Membership, error)
	Get(ctx context.Context, id uint) (*model.Membership, error)
	CurrentForUser(ctx context.Context, userID uint) (*model.Membership, error)
	List(ctx context.Context) ([]model.Membership, error)
	Cancel(ctx context.Context, id uint) error
}

type membershipService struct {
	membershipRepo repository.MembershipRepository
	planRepo       repository.PlanRepository
	cache          *cache.Client
	now            func() time.Time
}

// NewMembershipService creates a new membership service.
func NewMembershipService(membershipRepo repository.MembershipRepository, planRepo repository.PlanRepository, cache *cache.Client) MembershipService {
	return &membershipService{
		membershipRepo: membershipRepo,
		planRepo:       planRepo,
		cache:          cache,
		now:            time.Now,
	}
}

func planCacheKey(id uint) string {
	return fmt.Sprintf("plan:%d", id)
}

func membershipCacheKey(userID uint) string {
	return fmt.Sprintf("membership:user:%d", userID)
}

// getPlan resolves plan reference data through the cache.
func (s *membershipService) getPlan(ctx context.Context, planID uint) (*model.Plan, error) {
	if data, _ := s.cache.Get(ctx, planCacheKey(planID)); data != nil {
		var cached model.Plan
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(plan); err == nil {
		_ = s.cache.Set(ctx, planCacheKey(planID), payload, planCacheTTL)
	}

	return plan, nil
}

// computeDates derives the membership interval from the plan duration.
// Expiry is calendar-day arithmetic: join + duration_days.
func (s *membershipService) computeDates(plan *model.Plan) (join, expiry time.Time) {
	join = s.now().Truncate(24 * time.Hour)
	expiry = join.AddDate(0, 0, plan.DurationDays)
	return join, expiry
}

// CreateOrExtend rewrites the user's most recent membership row to the given
// plan with freshly computed dates. When the user has no membership row yet,
// the zero-rows-affected result triggers an insert instead: upsert by
// fallback, without a separate existence check on the update path.
func (s *membershipService) CreateOrExtend(ctx context.Context, userID, planID uint) (*model.Membership, error) {
	plan, err := s.getPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	join, expiry := s.computeDates(plan)

	affected, err := s.membershipRepo.UpdateLatestForUser(ctx, userID, planID, join, expiry, model.MembershipStatusActive)
	if err != nil {
		return nil, fmt.Errorf("update membership: %w", err)
	}

	var m *model.Membership
	if affected == 0 {
		m = &model.Membership{
			UserID:     userID,
			PlanID:     planID,
			JoinDate:   join,
			ExpiryDate: expiry,
			Status:     model.MembershipStatusActive,
		}
		if err := s.membershipRepo.Create(ctx, m); err != nil {
			return nil, fmt.Errorf("create membership: %w", err)
		}
	} else {
		m, err = s.membershipRepo.FindLatestByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("reload membership: %w", err)
		}
	}

	_ = s.cache.Delete(ctx, membershipCacheKey(userID))
	return m, nil
}

// ChangePlan recomputes the dates for the user's latest membership row. Unlike
// CreateOrExtend it does not fall back to an insert: a user without a
// membership cannot change plans.
func (s *membershipService) ChangePlan(ctx context.Context, userID, planID uint) (*model.Membership, error) {
	plan, err := s.getPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	join, expiry := s.computeDates(plan)

	affected, err := s.membershipRepo.UpdateLatestForUser(ctx, userID, planID, join, expiry, model.MembershipStatusActive)
	if err != nil {
		return nil, fmt.Errorf("update membership: %w", err)
	}
	if affected == 0 {
		return nil, apperrors.ErrMembershipNotFound
	}

	m, err := s.membershipRepo.FindLatestByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reload membership: %w", err)
	}

	_ = s.cache.Delete(ctx, membershipCacheKey(userID))
	return m, nil
}

func (s *membershipService) Get(ctx context.Context, id uint) (*model.Membership, error) {
	m, err := s.membershipRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, err
	}
	return m, nil
}

// CurrentForUser returns the user's most recent membership, served from cache
// when possible. The stored status is returned as-is; callers comparing
// expiry_date to the current date own any expiry enforcement.
func (s *membershipService) CurrentForUser(ctx context.Context, userID uint) (*model.Membership, error) {
	if data, _ := s.cache.Get(ctx, membershipCacheKey(userID)); data != nil {
		var cached model.Membership
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	m, err := s.membershipRepo.FindLatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(m); err == nil {
		_ = s.cache.Set(ctx, membershipCacheKey(userID), payload, membershipCacheTTL)
	}

	return m, nil
}

func (s *membershipService) List(ctx context.Context) ([]model.Membership, error) {
	return s.membershipRepo.List(ctx)
}

// Cancel marks a membership cancelled. The row is kept as history.
func (s *membershipService) Cancel(ctx context.Context, id uint) error {
	m, err := s.membershipRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMembershipNotFound
		}
		return err
	}

	if _, err := s.membershipRepo.UpdateStatus(ctx, id, model.MembershipStatusCancelled); err != nil {
		return fmt.Errorf("cancel membership: %w", err)
	}

	_ = s.cache.Delete(ctx, membershipCacheKey(m.UserID))
	return nil
}

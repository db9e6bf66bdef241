package service

import (
	"context"
	"encoding/json"

	"gymcore/internal/cache"
	"gymcore/internal/model"
	"gymcore/internal/repository"
)

const plansListCacheKey = "plans:all"

// PlanService serves plan reference data.
type PlanService interface {
	List(ctx context.Context) ([]model.Plan, error)
}

type planService struct {
	repo  repository.PlanRepository
	cache *cache.Client
}

// NewPlanService creates a new plan service.
func NewPlanService(repo repository.PlanRepository, cache *cache.Client) PlanService {
	return &planService{repo: repo, cache: cache}
}

// List returns all plans ordered by duration. Plans are immutable reference
// data, so the cached copy is safe for its full TTL.
func (s *planService) List(ctx context.Context) ([]model.Plan, error) {
	if data, _ := s.cache.Get(ctx, plansListCacheKey); data != nil {
		var cached []model.Plan
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	plans, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(plans); err == nil {
		_ = s.cache.Set(ctx, plansListCacheKey, payload, planCacheTTL)
	}

	return plans, nil
}

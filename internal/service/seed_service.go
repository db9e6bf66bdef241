package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"gymcore/internal/model"
	"gymcore/internal/repository"
)

// SeedService writes the fixed reference data: the role tiers and a default
// plan catalogue. Seeding is idempotent.
type SeedService interface {
	SeedDefaults(ctx context.Context) (roles, plans int, err error)
}

type seedService struct {
	roleRepo repository.RoleRepository
	planRepo repository.PlanRepository
}

// NewSeedService creates a new seed service.
func NewSeedService(roleRepo repository.RoleRepository, planRepo repository.PlanRepository) SeedService {
	return &seedService{
		roleRepo: roleRepo,
		planRepo: planRepo,
	}
}

// DefaultPlans is the plan catalogue written by seeding.
func DefaultPlans() []model.Plan {
	return []model.Plan{
		{Name: "Basic", DurationDays: 30, Price: decimal.NewFromInt(29)},
		{Name: "Standard", DurationDays: 90, Price: decimal.NewFromInt(79)},
		{Name: "Annual", DurationDays: 365, Price: decimal.NewFromInt(249)},
	}
}

func (s *seedService) SeedDefaults(ctx context.Context) (int, int, error) {
	roles := 0
	for _, tier := range []model.RoleID{model.RoleAdmin, model.RoleTrainer, model.RoleMember} {
		role := &model.Role{ID: uint(tier), Name: tier.Name()}
		if err := s.roleRepo.FirstOrCreate(ctx, role); err != nil {
			return roles, 0, fmt.Errorf("seed role %s: %w", role.Name, err)
		}
		roles++
	}

	plans := 0
	for _, plan := range DefaultPlans() {
		p := plan
		if err := s.planRepo.FirstOrCreate(ctx, &p); err != nil {
			return roles, plans, fmt.Errorf("seed plan %s: %w", p.Name, err)
		}
		plans++
	}

	return roles, plans, nil
}

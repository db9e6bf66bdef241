package repository

import (
	"context"

	"gorm.io/gorm"

	"gymcore/internal/model"
)

// PlanRepository defines plan persistence operations. Plans are reference
// data: read-heavy, written only by seeding.
type PlanRepository interface {
	Create(ctx context.Context, plan *model.Plan) error
	FirstOrCreate(ctx context.Context, plan *model.Plan) error
	FindByID(ctx context.Context, id uint) (*model.Plan, error)
	List(ctx context.Context) ([]model.Plan, error)
}

type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository builds a GORM-backed repository.
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(ctx context.Context, plan *model.Plan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *planRepository) FirstOrCreate(ctx context.Context, plan *model.Plan) error {
	return r.db.WithContext(ctx).
		Where("name = ?", plan.Name).FirstOrCreate(plan).Error
}

func (r *planRepository) FindByID(ctx context.Context, id uint) (*model.Plan, error) {
	var plan model.Plan
	if err := r.db.WithContext(ctx).First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepository) List(ctx context.Context) ([]model.Plan, error) {
	var plans []model.Plan
	if err := r.db.WithContext(ctx).Order("duration_days ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

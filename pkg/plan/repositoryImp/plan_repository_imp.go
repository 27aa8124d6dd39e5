package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"krishi/entities"
	"krishi/pkg/plan/repository"
)

type planRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlanRepository { return &planRepo{db} }

func (r *planRepo) Get(userID, planID string) (*entities.FarmingPlan, error) {
	var p entities.FarmingPlan
	err := r.db.Where("user_id = ? AND plan_id = ?", userID, planID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planRepo) Put(p *entities.FarmingPlan) error {
	return r.db.Save(p).Error
}

func (r *planRepo) ClaimGeneration(userID, planID string, at time.Time) (bool, error) {
	res := r.db.Model(&entities.FarmingPlan{}).
		Where("user_id = ? AND plan_id = ? AND generation_attempted_at IS NULL", userID, planID).
		Update("generation_attempted_at", at)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *planRepo) FillIfEmpty(p *entities.FarmingPlan) (bool, error) {
	res := r.db.Model(&entities.FarmingPlan{}).
		Where("user_id = ? AND plan_id = ? AND (source IS NULL OR source = '')", p.UserID, p.PlanID).
		Select("title", "overview", "harvest_date", "cleanup_date",
			"watering", "recurring", "one_offs", "source", "generation_error").
		Updates(p)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *planRepo) ListActive(userID, todayISO string) ([]entities.FarmingPlan, error) {
	var ps []entities.FarmingPlan
	err := r.db.Where("user_id = ? AND cleanup_date >= ?", userID, todayISO).
		Order("planting_date ASC").Find(&ps).Error
	if err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *planRepo) DeleteExpired(userID, todayISO string) (int64, error) {
	res := r.db.Where("user_id = ? AND cleanup_date < ?", userID, todayISO).
		Delete(&entities.FarmingPlan{})
	return res.RowsAffected, res.Error
}

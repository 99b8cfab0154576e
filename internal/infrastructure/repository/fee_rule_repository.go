package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	domainRepo "github.com/sangkips/shopledger-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type feeRuleRepository struct {
	db *gorm.DB
}

// NewFeeRuleRepository creates a new fee rule repository
func NewFeeRuleRepository(db *gorm.DB) domainRepo.FeeRuleRepository {
	return &feeRuleRepository{db: db}
}

func orderedSlabs(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *feeRuleRepository) GetByServiceType(ctx context.Context, shopID uuid.UUID, serviceType enum.ServiceType) (*entity.FeeRule, error) {
	var rule entity.FeeRule
	err := r.db.WithContext(ctx).
		Preload("Slabs", orderedSlabs).
		Where("shop_id = ? AND service_type = ?", shopID, serviceType).
		First(&rule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *feeRuleRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]entity.FeeRule, error) {
	var rules []entity.FeeRule
	err := r.db.WithContext(ctx).
		Preload("Slabs", orderedSlabs).
		Where("shop_id = ?", shopID).
		Order("service_type ASC").
		Find(&rules).Error
	return rules, err
}

func (r *feeRuleRepository) Upsert(ctx context.Context, rule *entity.FeeRule) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slabs := rule.Slabs
		rule.Slabs = nil

		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shop_id"}, {Name: "service_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_percentage", "rate", "use_slabs", "updated_at"}),
		}).Create(rule).Error
		if err != nil {
			return err
		}

		// The conflict path keeps the original id
		var stored entity.FeeRule
		if err := tx.Where("shop_id = ? AND service_type = ?", rule.ShopID, rule.ServiceType).
			First(&stored).Error; err != nil {
			return err
		}
		rule.ID = stored.ID
		rule.CreatedAt = stored.CreatedAt

		if err := tx.Where("fee_rule_id = ?", rule.ID).Delete(&entity.FeeSlab{}).Error; err != nil {
			return err
		}
		for i := range slabs {
			slabs[i].ID = uuid.Nil
			slabs[i].FeeRuleID = rule.ID
			slabs[i].Position = i
		}
		if len(slabs) > 0 {
			if err := tx.Create(&slabs).Error; err != nil {
				return err
			}
		}
		rule.Slabs = slabs
		return nil
	})
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jaythan-dev/projeto-concessionaria/models"
)

type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository 创建车主存储
func NewOwnerRepository(db *gorm.DB) OwnerRepository {
	return &ownerRepository{db: db}
}

func (r *ownerRepository) FindAll(ctx context.Context) ([]models.Owner, error) {
	owners := make([]models.Owner, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&owners).Error; err != nil {
		return nil, translate(err, opRead)
	}
	return owners, nil
}

func (r *ownerRepository) FindByID(ctx context.Context, id int) (*models.Owner, error) {
	var owner models.Owner
	if err := r.db.WithContext(ctx).First(&owner, id).Error; err != nil {
		return nil, translate(err, opRead)
	}
	return &owner, nil
}

func (r *ownerRepository) Create(ctx context.Context, input models.OwnerInput) (*models.Owner, error) {
	var owner models.Owner
	input.Apply(&owner)
	if err := r.db.WithContext(ctx).Create(&owner).Error; err != nil {
		return nil, translate(err, opWrite)
	}
	return &owner, nil
}

func (r *ownerRepository) Update(ctx context.Context, id int, input models.OwnerInput) (*models.Owner, error) {
	var owner models.Owner
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&owner, id).Error; err != nil {
			return err
		}
		if cols := input.Columns(); len(cols) > 0 {
			if err := tx.Model(&models.Owner{}).Where("id = ?", id).Updates(cols).Error; err != nil {
				return err
			}
		}
		return tx.First(&owner, id).Error
	})
	if err != nil {
		return nil, translate(err, opWrite)
	}
	return &owner, nil
}

func (r *ownerRepository) Delete(ctx context.Context, id int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &models.Owner{}, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}

		// 检查是否有汽车引用该车主
		count, err := referencedBy(tx, "owner_id", id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrStillReferenced
		}

		result := tx.Delete(&models.Owner{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return translate(err, opDelete)
}


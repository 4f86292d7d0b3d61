package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jaythan-dev/projeto-concessionaria/models"
)

type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository 创建品牌存储
func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) FindAll(ctx context.Context) ([]models.Brand, error) {
	brands := make([]models.Brand, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&brands).Error; err != nil {
		return nil, translate(err, opRead)
	}
	return brands, nil
}

func (r *brandRepository) FindByID(ctx context.Context, id int) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.WithContext(ctx).First(&brand, id).Error; err != nil {
		return nil, translate(err, opRead)
	}
	return &brand, nil
}

func (r *brandRepository) Create(ctx context.Context, input models.BrandInput) (*models.Brand, error) {
	var brand models.Brand
	input.Apply(&brand)
	if err := r.db.WithContext(ctx).Create(&brand).Error; err != nil {
		return nil, translate(err, opWrite)
	}
	return &brand, nil
}

func (r *brandRepository) Update(ctx context.Context, id int, input models.BrandInput) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&brand, id).Error; err != nil {
			return err
		}
		if cols := input.Columns(); len(cols) > 0 {
			if err := tx.Model(&models.Brand{}).Where("id = ?", id).Updates(cols).Error; err != nil {
				return err
			}
		}
		return tx.First(&brand, id).Error
	})
	if err != nil {
		return nil, translate(err, opWrite)
	}
	return &brand, nil
}

func (r *brandRepository) Delete(ctx context.Context, id int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := exists(tx, &models.Brand{}, id)
		if err != nil {
			return err
		}
		if !found {
			return ErrNotFound
		}

		// 检查是否有汽车引用该品牌
		count, err := referencedBy(tx, "brand_id", id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrStillReferenced
		}

		result := tx.Delete(&models.Brand{}, id)
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


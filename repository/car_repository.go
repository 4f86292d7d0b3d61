package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/jaythan-dev/projeto-concessionaria/models"
)

type carRepository struct {
	db *gorm.DB
}

// NewCarRepository 创建汽车存储
func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) FindAll(ctx context.Context) ([]models.Car, error) {
	cars := make([]models.Car, 0)
	err := r.db.WithContext(ctx).Preload("Brand").Preload("Owner").Order("id").Find(&cars).Error
	if err != nil {
		return nil, translate(err, opRead)
	}
	return cars, nil
}

func (r *carRepository) FindByID(ctx context.Context, id int) (*models.Car, error) {
	var car models.Car
	if err := r.db.WithContext(ctx).Preload("Brand").Preload("Owner").First(&car, id).Error; err != nil {
		return nil, translate(err, opRead)
	}
	return &car, nil
}

func (r *carRepository) Create(ctx context.Context, input models.CarInput) (*models.Car, error) {
	var car models.Car
	input.Apply(&car)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkCarReferences(tx, &car.BrandID, &car.OwnerID); err != nil {
			return err
		}
		return tx.Create(&car).Error
	})
	if err != nil {
		return nil, translate(err, opWrite)
	}
	return &car, nil
}

func (r *carRepository) Update(ctx context.Context, id int, input models.CarInput) (*models.Car, error) {
	var car models.Car
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&car, id).Error; err != nil {
			return err
		}

		cols := input.Columns()
		if len(cols) == 0 {
			return nil
		}

		// 只检查本次修改的引用
		if err := checkCarReferences(tx, input.BrandID, input.OwnerID); err != nil {
			return err
		}

		if err := tx.Model(&models.Car{}).Where("id = ?", id).Updates(cols).Error; err != nil {
			return err
		}
		return tx.First(&car, id).Error
	})
	if err != nil {
		return nil, translate(err, opWrite)
	}
	return &car, nil
}

func (r *carRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&models.Car{}, id)
	if result.Error != nil {
		return translate(result.Error, opDelete)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// checkCarReferences 检查品牌和车主是否存在，nil 表示不检查
func checkCarReferences(tx *gorm.DB, brandID, ownerID *int) error {
	if brandID != nil {
		if err := checkReference(tx, &models.Brand{}, "brandId", "Brand", *brandID); err != nil {
			return err
		}
	}
	if ownerID != nil {
		if err := checkReference(tx, &models.Owner{}, "ownerId", "Owner", *ownerID); err != nil {
			return err
		}
	}
	return nil
}

func checkReference(tx *gorm.DB, model interface{}, field, entity string, id int) error {
	found, err := exists(tx, model, id)
	if err != nil {
		return err
	}
	if !found {
		return &ReferenceError{Field: field, Entity: entity, ID: id}
	}
	return nil
}

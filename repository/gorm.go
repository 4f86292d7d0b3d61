package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/jaythan-dev/projeto-concessionaria/database"
	"github.com/jaythan-dev/projeto-concessionaria/models"
)

// NewGormRepositories 基于 gorm 的存储
func NewGormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Brands: NewBrandRepository(db),
		Owners: NewOwnerRepository(db),
		Cars:   NewCarRepository(db),
	}
}

// writeOp 区分外键错误发生在写入还是删除
type writeOp int

const (
	opRead writeOp = iota
	opWrite
	opDelete
)

// translate 将驱动错误转换为存储层错误，存储层自身的错误原样返回
func translate(err error, op writeOp) error {
	if err == nil {
		return nil
	}

	switch database.Classify(err) {
	case database.KindNotFound:
		return ErrNotFound
	case database.KindForeignKey:
		if op == opDelete {
			return fmt.Errorf("%w: %v", ErrStillReferenced, err)
		}
		return fmt.Errorf("%w: %v", ErrInvalidReference, err)
	case database.KindUnavailable:
		return fmt.Errorf("database unavailable: %w", err)
	case database.KindUnknown:
		return err
	default:
		return err
	}
}

// exists 判断记录是否存在
func exists(tx *gorm.DB, model interface{}, id int) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// referencedBy 统计引用该记录的汽车数量
func referencedBy(tx *gorm.DB, column string, id int) (int64, error) {
	var count int64
	err := tx.Model(&models.Car{}).Where(column+" = ?", id).Count(&count).Error
	return count, err
}

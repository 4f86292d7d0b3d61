// Package repository is the entity store: create/read/update/delete for
// brands, owners and cars with existence and reference checks.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jaythan-dev/projeto-concessionaria/models"
)

// 存储层错误
var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("record not found")
	// ErrInvalidReference 写入的外键指向不存在的记录
	ErrInvalidReference = errors.New("referenced record does not exist")
	// ErrStillReferenced 删除的记录仍被其他记录引用
	ErrStillReferenced = errors.New("record is still referenced")
)

// ReferenceError 描述具体缺失的引用
type ReferenceError struct {
	Field  string // 请求中的字段名，如 brandId
	Entity string // 被引用的实体，如 Brand
	ID     int
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: %s %d does not exist", e.Field, e.Entity, e.ID)
}

func (e *ReferenceError) Unwrap() error {
	return ErrInvalidReference
}

// BrandRepository 品牌存储
type BrandRepository interface {
	FindAll(ctx context.Context) ([]models.Brand, error)
	FindByID(ctx context.Context, id int) (*models.Brand, error)
	Create(ctx context.Context, input models.BrandInput) (*models.Brand, error)
	Update(ctx context.Context, id int, input models.BrandInput) (*models.Brand, error)
	Delete(ctx context.Context, id int) error
}

// OwnerRepository 车主存储
type OwnerRepository interface {
	FindAll(ctx context.Context) ([]models.Owner, error)
	FindByID(ctx context.Context, id int) (*models.Owner, error)
	Create(ctx context.Context, input models.OwnerInput) (*models.Owner, error)
	Update(ctx context.Context, id int, input models.OwnerInput) (*models.Owner, error)
	Delete(ctx context.Context, id int) error
}

// CarRepository 汽车存储，查询结果带品牌和车主
type CarRepository interface {
	FindAll(ctx context.Context) ([]models.Car, error)
	FindByID(ctx context.Context, id int) (*models.Car, error)
	Create(ctx context.Context, input models.CarInput) (*models.Car, error)
	Update(ctx context.Context, id int, input models.CarInput) (*models.Car, error)
	Delete(ctx context.Context, id int) error
}

// Repositories 三个实体的存储集合
type Repositories struct {
	Brands BrandRepository
	Owners OwnerRepository
	Cars   CarRepository
}

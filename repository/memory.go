package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/jaythan-dev/projeto-concessionaria/models"
)

// memoryStore 内存存储，三张表共享一把锁以保证引用检查和写入是原子的
type memoryStore struct {
	mu      sync.RWMutex
	brands  map[int]models.Brand
	owners  map[int]models.Owner
	cars    map[int]models.Car
	brandID int
	ownerID int
	carID   int
}

// NewMemoryRepositories 创建内存存储，进程退出后数据丢失
func NewMemoryRepositories() Repositories {
	s := &memoryStore{
		brands: make(map[int]models.Brand),
		owners: make(map[int]models.Owner),
		cars:   make(map[int]models.Car),
	}
	return Repositories{
		Brands: &memoryBrands{s},
		Owners: &memoryOwners{s},
		Cars:   &memoryCars{s},
	}
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func (s *memoryStore) carsReferencing(brandID, ownerID int) bool {
	for _, car := range s.cars {
		if (brandID != 0 && car.BrandID == brandID) || (ownerID != 0 && car.OwnerID == ownerID) {
			return true
		}
	}
	return false
}

func (s *memoryStore) checkCarReferences(brandID, ownerID *int) error {
	if brandID != nil {
		if _, ok := s.brands[*brandID]; !ok {
			return &ReferenceError{Field: "brandId", Entity: "Brand", ID: *brandID}
		}
	}
	if ownerID != nil {
		if _, ok := s.owners[*ownerID]; !ok {
			return &ReferenceError{Field: "ownerId", Entity: "Owner", ID: *ownerID}
		}
	}
	return nil
}

// withRelations 读取时关联品牌和车主
func (s *memoryStore) withRelations(car models.Car) models.Car {
	if brand, ok := s.brands[car.BrandID]; ok {
		car.Brand = &brand
	}
	if owner, ok := s.owners[car.OwnerID]; ok {
		car.Owner = &owner
	}
	return car
}

type memoryBrands struct{ s *memoryStore }

func (r *memoryBrands) FindAll(ctx context.Context) ([]models.Brand, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	brands := make([]models.Brand, 0, len(r.s.brands))
	for _, id := range sortedKeys(r.s.brands) {
		brands = append(brands, r.s.brands[id])
	}
	return brands, nil
}

func (r *memoryBrands) FindByID(ctx context.Context, id int) (*models.Brand, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	brand, ok := r.s.brands[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &brand, nil
}

func (r *memoryBrands) Create(ctx context.Context, input models.BrandInput) (*models.Brand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.brandID++
	brand := models.Brand{ID: r.s.brandID}
	input.Apply(&brand)
	r.s.brands[brand.ID] = brand
	return &brand, nil
}

func (r *memoryBrands) Update(ctx context.Context, id int, input models.BrandInput) (*models.Brand, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	brand, ok := r.s.brands[id]
	if !ok {
		return nil, ErrNotFound
	}
	input.Apply(&brand)
	r.s.brands[id] = brand
	return &brand, nil
}

func (r *memoryBrands) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.brands[id]; !ok {
		return ErrNotFound
	}
	if r.s.carsReferencing(id, 0) {
		return ErrStillReferenced
	}
	delete(r.s.brands, id)
	return nil
}

type memoryOwners struct{ s *memoryStore }

func (r *memoryOwners) FindAll(ctx context.Context) ([]models.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	owners := make([]models.Owner, 0, len(r.s.owners))
	for _, id := range sortedKeys(r.s.owners) {
		owners = append(owners, r.s.owners[id])
	}
	return owners, nil
}

func (r *memoryOwners) FindByID(ctx context.Context, id int) (*models.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	owner, ok := r.s.owners[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &owner, nil
}

func (r *memoryOwners) Create(ctx context.Context, input models.OwnerInput) (*models.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.ownerID++
	owner := models.Owner{ID: r.s.ownerID}
	input.Apply(&owner)
	r.s.owners[owner.ID] = owner
	return &owner, nil
}

func (r *memoryOwners) Update(ctx context.Context, id int, input models.OwnerInput) (*models.Owner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	owner, ok := r.s.owners[id]
	if !ok {
		return nil, ErrNotFound
	}
	input.Apply(&owner)
	r.s.owners[id] = owner
	return &owner, nil
}

func (r *memoryOwners) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.owners[id]; !ok {
		return ErrNotFound
	}
	if r.s.carsReferencing(0, id) {
		return ErrStillReferenced
	}
	delete(r.s.owners, id)
	return nil
}

type memoryCars struct{ s *memoryStore }

func (r *memoryCars) FindAll(ctx context.Context) ([]models.Car, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	cars := make([]models.Car, 0, len(r.s.cars))
	for _, id := range sortedKeys(r.s.cars) {
		cars = append(cars, r.s.withRelations(r.s.cars[id]))
	}
	return cars, nil
}

func (r *memoryCars) FindByID(ctx context.Context, id int) (*models.Car, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	car, ok := r.s.cars[id]
	if !ok {
		return nil, ErrNotFound
	}
	car = r.s.withRelations(car)
	return &car, nil
}

func (r *memoryCars) Create(ctx context.Context, input models.CarInput) (*models.Car, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var car models.Car
	input.Apply(&car)
	if err := r.s.checkCarReferences(&car.BrandID, &car.OwnerID); err != nil {
		return nil, err
	}

	r.s.carID++
	car.ID = r.s.carID
	r.s.cars[car.ID] = car
	return &car, nil
}

func (r *memoryCars) Update(ctx context.Context, id int, input models.CarInput) (*models.Car, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	car, ok := r.s.cars[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := r.s.checkCarReferences(input.BrandID, input.OwnerID); err != nil {
		return nil, err
	}
	input.Apply(&car)
	r.s.cars[id] = car
	return &car, nil
}

func (r *memoryCars) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.cars[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.cars, id)
	return nil
}

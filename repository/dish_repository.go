package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type DishRepository struct{ DB *gorm.DB }

func NewDishRepository(db *gorm.DB) *DishRepository { return &DishRepository{DB: db} }

func (r *DishRepository) GetDishForOwner(ownerID, dishID uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.Where("id = ? AND owner_id = ?", dishID, ownerID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// ValidateDishesBelongToOwner checks that every id is an available dish
// of this restaurant.
func (r *DishRepository) ValidateDishesBelongToOwner(dishIDs []uint, ownerID uint) (bool, error) {
	if len(dishIDs) == 0 {
		return true, nil
	}
	var cnt int64
	if err := r.DB.Model(&entity.Dish{}).
		Where("id IN ? AND owner_id = ? AND is_available = ?", dishIDs, ownerID, true).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt == int64(len(dishIDs)), nil
}

func (r *DishRepository) ListAvailableByOwner(ownerID uint) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.Where("owner_id = ? AND is_available = ?", ownerID, true).
		Preload("Category").
		Order("category_id, name").
		Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) ListByOwner(ownerID uint) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.Where("owner_id = ?", ownerID).
		Preload("Category").
		Order("category_id, name").
		Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) Create(d *entity.Dish) error { return r.DB.Create(d).Error }
func (r *DishRepository) Save(d *entity.Dish) error   { return r.DB.Save(d).Error }

func (r *DishRepository) ListCategoriesByOwner(ownerID uint) ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Where("owner_id = ?", ownerID).Order("name").Find(&cats).Error
	return cats, err
}

func (r *DishRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

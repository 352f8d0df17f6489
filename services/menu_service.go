package services

import (
	"backend/entity"
	"backend/repository"
)

type MenuService struct {
	DishRepo *repository.DishRepository
}

func NewMenuService(dishRepo *repository.DishRepository) *MenuService {
	return &MenuService{DishRepo: dishRepo}
}

type MenuDish struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Picture     string `json:"picture"`
}

type MenuSection struct {
	Category string     `json:"category"`
	Dishes   []MenuDish `json:"dishes"`
}

// PublicMenu is what a customer sees after scanning the table QR:
// available dishes grouped by category.
func (s *MenuService) PublicMenu(ownerID uint) ([]MenuSection, error) {
	dishes, err := s.DishRepo.ListAvailableByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	index := map[string]int{}
	sections := []MenuSection{}
	for _, d := range dishes {
		name := d.Category.Name
		if name == "" {
			name = "Other"
		}
		i, ok := index[name]
		if !ok {
			i = len(sections)
			index[name] = i
			sections = append(sections, MenuSection{Category: name})
		}
		sections[i].Dishes = append(sections[i].Dishes, MenuDish{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Price:       d.Price,
			Picture:     d.Picture,
		})
	}
	return sections, nil
}

// ----- owner-side dish management -----

type DishIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=1"`
	CategoryID  uint   `json:"categoryId"`
	IsAvailable *bool  `json:"isAvailable"`
}

func (s *MenuService) ListDishes(ownerID uint) ([]entity.Dish, error) {
	return s.DishRepo.ListByOwner(ownerID)
}

func (s *MenuService) CreateDish(ownerID uint, in *DishIn) (*entity.Dish, error) {
	d := entity.Dish{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		OwnerID:     ownerID,
		IsAvailable: true,
	}
	if in.IsAvailable != nil {
		d.IsAvailable = *in.IsAvailable
	}
	if err := s.DishRepo.Create(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *MenuService) UpdateDish(ownerID, dishID uint, in *DishIn) (*entity.Dish, error) {
	d, err := s.DishRepo.GetDishForOwner(ownerID, dishID)
	if err != nil {
		return nil, err
	}
	d.Name = in.Name
	d.Description = in.Description
	d.Price = in.Price
	if in.CategoryID != 0 {
		d.CategoryID = in.CategoryID
	}
	if in.IsAvailable != nil {
		d.IsAvailable = *in.IsAvailable
	}
	if err := s.DishRepo.Save(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *MenuService) SetDishPicture(ownerID, dishID uint, path string) error {
	d, err := s.DishRepo.GetDishForOwner(ownerID, dishID)
	if err != nil {
		return err
	}
	d.Picture = path
	return s.DishRepo.Save(d)
}

func (s *MenuService) ListCategories(ownerID uint) ([]entity.Category, error) {
	return s.DishRepo.ListCategoriesByOwner(ownerID)
}

func (s *MenuService) CreateCategory(ownerID uint, name string) (*entity.Category, error) {
	cat := entity.Category{Name: name, OwnerID: ownerID}
	if err := s.DishRepo.CreateCategory(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

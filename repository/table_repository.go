package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type TableRepository struct{ DB *gorm.DB }

func NewTableRepository(db *gorm.DB) *TableRepository { return &TableRepository{DB: db} }

func (r *TableRepository) GetTableForOwner(ownerID, tableID uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.Where("id = ? AND owner_id = ?", tableID, ownerID).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) ListByOwner(ownerID uint) ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Where("owner_id = ?", ownerID).
		Preload("TableStatus").
		Order("table_number").
		Find(&tables).Error
	return tables, err
}

func (r *TableRepository) Create(tx *gorm.DB, t *entity.Table) error { return tx.Create(t).Error }
func (r *TableRepository) Save(tx *gorm.DB, t *entity.Table) error   { return tx.Save(t).Error }

func (r *TableRepository) Delete(ownerID, tableID uint) error {
	return r.DB.Where("id = ? AND owner_id = ?", tableID, ownerID).
		Delete(&entity.Table{}).Error
}

func (r *TableRepository) UpdateStatus(ownerID, tableID, statusID uint) (int64, error) {
	res := r.DB.Model(&entity.Table{}).
		Where("id = ? AND owner_id = ?", tableID, ownerID).
		Update("table_status_id", statusID)
	return res.RowsAffected, res.Error
}

func (r *TableRepository) GetStatusIDByName(name string) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.TableStatus{}).
		Select("id").Where("status_name = ?", name).First(&row).Error
	return row.ID, err
}

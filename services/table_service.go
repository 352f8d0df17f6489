package services

import (
	"fmt"
	"os"
	"path/filepath"

	"backend/entity"
	"backend/repository"

	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

type TableService struct {
	Repo       *repository.TableRepository
	UploadDir  string
	PublicHost string
}

func NewTableService(repo *repository.TableRepository, uploadDir, publicHost string) *TableService {
	return &TableService{Repo: repo, UploadDir: uploadDir, PublicHost: publicHost}
}

func (s *TableService) List(ownerID uint) ([]entity.Table, error) {
	return s.Repo.ListByOwner(ownerID)
}

// Create inserts the table, generates its QR PNG pointing at the
// public menu URL for (owner, table) and stores the file path on the
// row. One transaction: a failed QR write leaves no orphan table.
func (s *TableService) Create(ownerID uint, tableNumber int) (*entity.Table, error) {
	statusID, err := s.Repo.GetStatusIDByName("Available")
	if err != nil {
		return nil, err
	}

	table := entity.Table{
		TableNumber:   tableNumber,
		OwnerID:       ownerID,
		TableStatusID: statusID,
	}
	err = s.Repo.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &table); err != nil {
			return err
		}
		path, err := s.generateQR(ownerID, table.ID, tableNumber)
		if err != nil {
			return err
		}
		table.Qrcode = path
		return s.Repo.Save(tx, &table)
	})
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (s *TableService) Delete(ownerID, tableID uint) error {
	return s.Repo.Delete(ownerID, tableID)
}

// UpdateStatus changes a table's status by name and returns the fresh
// table list so the caller can rebroadcast the floor view.
func (s *TableService) UpdateStatus(ownerID, tableID uint, statusName string) ([]entity.Table, error) {
	statusID, err := s.Repo.GetStatusIDByName(statusName)
	if err != nil {
		return nil, fmt.Errorf("unknown table status %q", statusName)
	}

	affected, err := s.Repo.UpdateStatus(ownerID, tableID, statusID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrForbidden
	}

	return s.Repo.ListByOwner(ownerID)
}

func (s *TableService) generateQR(ownerID, tableID uint, tableNumber int) (string, error) {
	url := fmt.Sprintf("%s/menu/%d?tableId=%d", s.PublicHost, ownerID, tableID)

	folder := filepath.Join(s.UploadDir, "qrcode")
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("table%d_qrcode_%d.png", tableNumber, ownerID)
	path := filepath.Join(folder, filename)
	if err := qrcode.WriteFile(url, qrcode.Medium, 256, path); err != nil {
		return "", err
	}
	return path, nil
}

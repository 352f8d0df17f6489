package services

import (
	"fmt"
	"time"

	"backend/entity"
	"backend/repository"
)

type DashboardService struct {
	Repo *repository.OrderRepository

	cancelledID uint // resolved once; revenue queries exclude this status
}

func NewDashboardService(repo *repository.OrderRepository) (*DashboardService, error) {
	id, err := repo.GetStatusIDByName(entity.StatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("order status %q not seeded: %w", entity.StatusCancelled, err)
	}
	return &DashboardService{Repo: repo, cancelledID: id}, nil
}

type DashboardOut struct {
	TodayRevenue    int64            `json:"todayRevenue"`
	TotalOrders     int64            `json:"totalOrders"`
	MonthlyEarnings int64            `json:"monthlyEarnings"`
	GrowthRate      float64          `json:"growthRate"`
	RevenueByDate   map[string]int64 `json:"revenueByDate"`
}

// Summary computes the owner dashboard over active order details only,
// so voided lines never count toward revenue.
func (s *DashboardService) Summary(ownerID uint, now time.Time) (*DashboardOut, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	todayRevenue, err := s.Repo.RevenueBetween(ownerID, s.cancelledID, today, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	totalOrders, err := s.Repo.CountOrdersForOwner(ownerID, s.cancelledID)
	if err != nil {
		return nil, err
	}

	monthly, err := s.Repo.RevenueBetween(ownerID, s.cancelledID, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}

	lastMonth, err := s.Repo.RevenueBetween(ownerID, s.cancelledID, lastMonthStart, monthStart)
	if err != nil {
		return nil, err
	}

	growth := 0.0
	if lastMonth != 0 {
		growth = float64(monthly-lastMonth) / float64(lastMonth) * 100
	}

	byDate, err := s.Repo.RevenueByDate(ownerID, s.cancelledID, now.AddDate(0, 0, -30), now.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	return &DashboardOut{
		TodayRevenue:    todayRevenue,
		TotalOrders:     totalOrders,
		MonthlyEarnings: monthly,
		GrowthRate:      growth,
		RevenueByDate:   byDate,
	}, nil
}

package repository

import (
	"time"

	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// GetOrderForOwner reads on the caller's handle so a transactional
// caller sees its own uncommitted state.
func (r *OrderRepository) GetOrderForOwner(tx *gorm.DB, ownerID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.Where("id = ? AND owner_id = ?", orderID, ownerID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListActiveOrdersForOwner returns every active order of one restaurant
// newest first, with customer, table, status and details preloaded for
// the staff aggregate view.
func (r *OrderRepository) ListActiveOrdersForOwner(ownerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("owner_id = ? AND is_active = ?", ownerID, true).
		Preload("Customer").
		Preload("Table").
		Preload("OrderStatus").
		Preload("OrderDetails").
		Preload("OrderDetails.Dish").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListOrdersForCustomer(ownerID, customerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("owner_id = ? AND customer_id = ? AND is_active = ?", ownerID, customerID, true).
		Preload("OrderDetails").
		Preload("OrderDetails.Dish").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard performs a compare-and-swap on the status column.
// RowsAffected == 0 means the order was not in fromID anymore.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID, fromID, toID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status_id = ?", orderID, fromID).
		Update("order_status_id", toID)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) DeactivateOrder(tx *gorm.DB, orderID uint) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Update("is_active", false).Error
}

// ---------------- Order details ----------------

func (r *OrderRepository) CreateOrderDetail(tx *gorm.DB, od *entity.OrderDetail) error {
	return tx.Create(od).Error
}

// GetDetailForOwner joins through orders so a staff member can only
// touch details of their own restaurant.
func (r *OrderRepository) GetDetailForOwner(tx *gorm.DB, ownerID, detailID uint) (*entity.OrderDetail, error) {
	var od entity.OrderDetail
	err := tx.Joins("JOIN orders ON orders.id = order_details.order_id").
		Where("order_details.id = ? AND orders.owner_id = ?", detailID, ownerID).
		First(&od).Error
	if err != nil {
		return nil, err
	}
	return &od, nil
}

func (r *OrderRepository) SetDetailActive(tx *gorm.DB, detailID uint, active bool) error {
	return tx.Model(&entity.OrderDetail{}).Where("id = ?", detailID).Update("is_active", active).Error
}

// ---------------- Lookups ----------------

func (r *OrderRepository) GetStatusIDByName(name string) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.OrderStatus{}).
		Select("id").Where("status_name = ?", name).First(&row).Error
	return row.ID, err
}

// ---------------- Dashboard reads ----------------

// detailRevenue is the shared base query: quantity * price over active
// details of every non-cancelled order. Delivered orders leave the
// staff board but their revenue stays.
func (r *OrderRepository) detailRevenue(ownerID, cancelledID uint) *gorm.DB {
	return r.DB.Table("order_details AS od").
		Joins("JOIN orders o ON o.id = od.order_id").
		Where("o.owner_id = ? AND o.order_status_id <> ? AND od.is_active = ?", ownerID, cancelledID, true)
}

func (r *OrderRepository) RevenueBetween(ownerID, cancelledID uint, from, to time.Time) (int64, error) {
	var total *int64
	err := r.detailRevenue(ownerID, cancelledID).
		Where("o.created_at >= ? AND o.created_at < ?", from, to).
		Select("SUM(od.quantity * od.price)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

func (r *OrderRepository) CountOrdersForOwner(ownerID, cancelledID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).
		Where("owner_id = ? AND order_status_id <> ?", ownerID, cancelledID).
		Count(&count).Error
	return count, err
}

func (r *OrderRepository) RevenueByDate(ownerID, cancelledID uint, from, to time.Time) (map[string]int64, error) {
	var rows []struct {
		Day     string
		Revenue int64
	}
	err := r.detailRevenue(ownerID, cancelledID).
		Where("o.created_at >= ? AND o.created_at < ?", from, to).
		Select("DATE(o.created_at) AS day, SUM(od.quantity * od.price) AS revenue").
		Group("DATE(o.created_at)").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Day] = row.Revenue
	}
	return out, nil
}

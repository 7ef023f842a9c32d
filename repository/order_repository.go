package repository

import (
	"time"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"

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

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForEmployee(employeeID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND employee_id = ?", orderID, employeeID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForVendor(vendorID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND vendor_id = ?", orderID, vendorID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID          uint      `json:"id"`
	VendorID    uint      `json:"vendorId"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForEmployee(employeeID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, vendor_id, status, total_amount, created_at").
		Where("employee_id = ?", employeeID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

type VendorOrderSummary struct {
	ID           uint      `json:"id"`
	EmployeeID   uint      `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Status       string    `json:"status"`
	TotalAmount  float64   `json:"totalAmount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ListOrdersForVendor joins employees so the vendor view can show who ordered.
func (r *OrderRepository) ListOrdersForVendor(vendorID uint, status string, limit int) ([]VendorOrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := r.DB.Table("orders AS o").
		Select("o.id, o.employee_id, o.status, o.total_amount, o.created_at, e.name AS employee_name").
		Joins("JOIN employees e ON e.id = o.employee_id").
		Where("o.vendor_id = ? AND o.deleted_at IS NULL", vendorID)
	if status != "" {
		q = q.Where("o.status = ?", status)
	}
	var out []VendorOrderSummary
	err := q.Order("o.id DESC").Limit(limit).Scan(&out).Error
	return out, err
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// SumItemCosts is the refund amount on cancellation acceptance.
func (r *OrderRepository) SumItemCosts(tx *gorm.DB, orderID uint) (float64, error) {
	var row struct{ Sum float64 }
	err := tx.Model(&entity.OrderItem{}).
		Select("COALESCE(SUM(total_cost), 0) AS sum").
		Where("order_id = ?", orderID).
		Scan(&row).Error
	return row.Sum, err
}

// ---------------- Status writes ----------------

// UpdateStatusFromTo writes the status only if the current value still
// matches; the guard keeps a concurrent transition from being clobbered.
func (r *OrderRepository) UpdateStatusFromTo(tx *gorm.DB, orderID uint, from, to string) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// UpdateStatus writes unconditionally. The vendor status endpoint has no
// transition table, per the product's lifecycle rules.
func (r *OrderRepository) UpdateStatus(orderID uint, to string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Update("status", to).Error
}

// CountByStatus powers the dashboards.
func (r *OrderRepository) CountByStatus(orgID, vendorID uint, status string) (int64, error) {
	var count int64
	q := r.DB.Model(&entity.Order{})
	if orgID != 0 {
		q = q.Where("org_id = ?", orgID)
	}
	if vendorID != 0 {
		q = q.Where("vendor_id = ?", vendorID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Count(&count).Error
	return count, err
}

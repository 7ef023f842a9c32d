package services

import (
	"errors"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"
	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	Auth      *AuthService
	Repo      *repository.OrderRepository
	MenuRepo  *repository.MenuRepository
	Employees *repository.EmployeeRepository
	Vendors   *repository.VendorRepository
}

func NewOrderService(
	db *gorm.DB,
	auth *AuthService,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	employees *repository.EmployeeRepository,
	vendors *repository.VendorRepository,
) *OrderService {
	return &OrderService{
		DB: db, Auth: auth, Repo: repo,
		MenuRepo: menuRepo, Employees: employees, Vendors: vendors,
	}
}

// ----- DTOs -----

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId"`
	Quantity   int  `json:"quantity"`
}
type PlaceOrderReq struct {
	UserEmail string        `json:"user_email" binding:"required,email"`
	VendorID  uint          `json:"vendorId" binding:"required"`
	Items     []OrderItemIn `json:"items"`
}
type PlaceOrderRes struct {
	ID          uint    `json:"id"`
	TotalAmount float64 `json:"totalAmount"`
	Balance     float64 `json:"balance"`
}

// ----- Place -----

// Place creates the order with item costs snapshotted from the current menu
// prices and debits the employee balance by the total, all in one
// transaction. The cancellation credit reverses exactly this debit.
func (s *OrderService) Place(req *PlaceOrderReq) (*PlaceOrderRes, error) {
	caller, err := s.Auth.ResolveRole(req.UserEmail, entity.RoleEmployee)
	if err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, errors.New("items is required")
	}

	vendor, err := s.Vendors.FindByID(req.VendorID)
	if err != nil {
		return nil, errors.New("vendor not found")
	}
	if vendor.OrgID != caller.OrgID {
		return nil, errors.New("forbidden")
	}

	var total float64
	rows := make([]struct {
		menuItemID uint
		qty        int
		cost       float64
	}, 0, len(req.Items))

	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, errors.New("quantity must be positive")
		}
		m, err := s.MenuRepo.GetBasics(it.MenuItemID)
		if err != nil {
			return nil, errors.New("menu item not found")
		}
		if m.VendorID != req.VendorID {
			return nil, errors.New("menu item not from this vendor")
		}
		if m.Status != entity.MenuItemActive {
			return nil, errors.New("menu item is inactive")
		}
		cost := m.Price * float64(it.Quantity)
		total += cost
		rows = append(rows, struct {
			menuItemID uint
			qty        int
			cost       float64
		}{m.ID, it.Quantity, cost})
	}

	var out PlaceOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			Status:      entity.OrderPlaced,
			TotalAmount: total,
			EmployeeID:  caller.ID,
			VendorID:    req.VendorID,
			OrgID:       caller.OrgID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, r := range rows {
			oi := entity.OrderItem{
				Quantity:   r.qty,
				TotalCost:  r.cost,
				OrderID:    order.ID,
				MenuItemID: r.menuItemID,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		// prepaid model: debit now, credit back if the vendor accepts a
		// cancellation later
		if err := s.Employees.AddToBalance(tx, caller.ID, -total); err != nil {
			return err
		}
		out = PlaceOrderRes{ID: order.ID, TotalAmount: total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	emp, err := s.Employees.FindByID(caller.ID)
	if err == nil {
		out.Balance = emp.Balance
	}
	return &out, nil
}

// ----- List & detail -----

func (s *OrderService) ListForEmployee(userEmail string, limit int) ([]repository.OrderSummary, error) {
	caller, err := s.Auth.ResolveRole(userEmail, entity.RoleEmployee)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListOrdersForEmployee(caller.ID, limit)
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForEmployee(userEmail string, orderID uint) (*OrderDetail, error) {
	caller, err := s.Auth.ResolveRole(userEmail, entity.RoleEmployee)
	if err != nil {
		return nil, err
	}
	o, err := s.Repo.GetOrderForEmployee(caller.ID, orderID)
	if err != nil {
		return nil, errors.New("order not found")
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

func (s *OrderService) ListForVendor(userEmail, status string, limit int) ([]repository.VendorOrderSummary, error) {
	caller, err := s.Auth.ResolveRole(userEmail, entity.RoleVendor)
	if err != nil {
		return nil, err
	}
	if status != "" && !entity.IsVendorWritableStatus(status) && status != entity.OrderCancelRequested {
		return nil, errors.New("invalid status filter")
	}
	return s.Repo.ListOrdersForVendor(caller.ID, status, limit)
}

func (s *OrderService) DetailForVendor(userEmail string, orderID uint) (*OrderDetail, error) {
	caller, err := s.Auth.ResolveRole(userEmail, entity.RoleVendor)
	if err != nil {
		return nil, err
	}
	o, err := s.Repo.GetOrderForVendor(caller.ID, orderID)
	if err != nil {
		return nil, errors.New("order not found")
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

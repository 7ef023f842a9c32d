package services

import (
	"errors"

	"github.com/Shivam-Sanjay-Nikam/YummBackend-sub000/entity"

	"gorm.io/gorm"
)

// ----- Employee actions -----

// RequestCancel flips an order to cancel_requested. Only orders still in
// placed/preparing/prepared qualify; given, cancelled and already-requested
// orders are rejected with the status untouched.
func (s *OrderService) RequestCancel(userEmail string, orderID uint) error {
	caller, err := s.Auth.ResolveRole(userEmail, entity.RoleEmployee)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderForEmployee(caller.ID, orderID)
		if err != nil {
			return errors.New("order not found")
		}
		if !entity.IsCancellable(o.Status) {
			return errors.New("order can no longer be cancelled")
		}
		ok, err := s.Repo.UpdateStatusFromTo(tx, o.ID, o.Status, entity.OrderCancelRequested)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("invalid_or_conflict")
		}
		return nil
	})
}

// ----- Vendor actions -----

const (
	CancelAccept = "accept"
	CancelReject = "reject"
)

// HandleCancel resolves a pending cancel request. Accept moves the order to
// cancelled and credits the employee with the sum of the item costs; reject
// puts the order back to preparing regardless of where it was before the
// request.
func (s *OrderService) HandleCancel(userEmail string, orderID uint, action string) error {
	if action != CancelAccept && action != CancelReject {
		return errors.New("action must be accept or reject")
	}
	caller, err := s.Auth.ResolveRole(userEmail, entity.RoleVendor)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrderForVendor(caller.ID, orderID)
		if err != nil {
			return errors.New("order not found")
		}
		if o.OrgID != caller.OrgID {
			return errors.New("forbidden")
		}
		if o.Status != entity.OrderCancelRequested {
			return errors.New("order has no pending cancel request")
		}

		if action == CancelReject {
			ok, err := s.Repo.UpdateStatusFromTo(tx, o.ID, entity.OrderCancelRequested, entity.OrderPreparing)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("invalid_or_conflict")
			}
			return nil
		}

		ok, err := s.Repo.UpdateStatusFromTo(tx, o.ID, entity.OrderCancelRequested, entity.OrderCancelled)
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("invalid_or_conflict")
		}
		refund, err := s.Repo.SumItemCosts(tx, o.ID)
		if err != nil {
			return err
		}
		return s.Employees.AddToBalance(tx, o.EmployeeID, refund)
	})
}

// SetStatus is the vendor's direct status write. Any of the five
// non-cancel-request statuses is accepted and written as-is; the lifecycle
// does not constrain this path.
func (s *OrderService) SetStatus(userEmail string, orderID uint, status string) error {
	if !entity.IsVendorWritableStatus(status) {
		return errors.New("invalid status")
	}
	caller, err := s.Auth.ResolveRole(userEmail, entity.RoleVendor)
	if err != nil {
		return err
	}
	o, err := s.Repo.GetOrderForVendor(caller.ID, orderID)
	if err != nil {
		return errors.New("order not found")
	}
	if o.OrgID != caller.OrgID {
		return errors.New("forbidden")
	}
	return s.Repo.UpdateStatus(o.ID, status)
}

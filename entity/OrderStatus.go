package entity

// Order lifecycle: placed → preparing → prepared → given, with a
// cancel_requested side branch resolved by the vendor to cancelled or
// back to preparing.
const (
	OrderPlaced          = "placed"
	OrderPreparing       = "preparing"
	OrderPrepared        = "prepared"
	OrderGiven           = "given"
	OrderCancelRequested = "cancel_requested"
	OrderCancelled       = "cancelled"
)

// IsVendorWritableStatus reports whether a vendor may write the status
// directly. The cancel-request branch goes through its own flow.
func IsVendorWritableStatus(s string) bool {
	switch s {
	case OrderPlaced, OrderPreparing, OrderPrepared, OrderGiven, OrderCancelled:
		return true
	}
	return false
}

// IsCancellable reports whether an employee may still request cancellation.
func IsCancellable(s string) bool {
	switch s {
	case OrderPlaced, OrderPreparing, OrderPrepared:
		return true
	}
	return false
}

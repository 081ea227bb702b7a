package order

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
)

// Statuses in workflow order. Transitions are unrestricted: an admin may move
// an order between any two statuses, backward included.
var Statuses = []Status{
	StatusPending,
	StatusPreparing,
	StatusReady,
	StatusDelivered,
}

func IsValidStatus(s Status) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

func InitialStatus() Status {
	return StatusPending
}

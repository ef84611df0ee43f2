package sim

import "errors"

// Precondition failures. Every operation that rejects a transition returns
// one of these (possibly wrapped with context); callers match with errors.Is.
// A rejected operation leaves the queue, tables and kitchen untouched.
var (
	ErrNoClientsInQueue         = errors.New("no clients in queue")
	ErrNoFreeTable              = errors.New("no free table")
	ErrTableNotFound            = errors.New("table not found")
	ErrDuplicateTable           = errors.New("table already exists")
	ErrTableOccupied            = errors.New("table is occupied")
	ErrTableNotReadyToOrder     = errors.New("table is not ready to order")
	ErrTableNotAwaitingFood     = errors.New("table is not waiting for food")
	ErrTableNotReadyToPay       = errors.New("table is not ready to pay")
	ErrTableNotReadyToBeCleaned = errors.New("table is not ready to be cleaned")
	ErrOrderNotFound            = errors.New("order not found")
	ErrOrderInFlight            = errors.New("table already has an order in the kitchen")
	ErrNoOrdersToPrepare        = errors.New("no orders to prepare")
	ErrNegativeCount            = errors.New("count cannot be negative")
	ErrInvalidCommand           = errors.New("invalid command")
)

// ErrEmptyQueue is an alias kept for callers that think of the queue rather
// than its clients.
var ErrEmptyQueue = ErrNoClientsInQueue

// knownErrors is the closed set ErrorKind classifies against.
var knownErrors = []error{
	ErrNoClientsInQueue,
	ErrNoFreeTable,
	ErrTableNotFound,
	ErrDuplicateTable,
	ErrTableOccupied,
	ErrTableNotReadyToOrder,
	ErrTableNotAwaitingFood,
	ErrTableNotReadyToPay,
	ErrTableNotReadyToBeCleaned,
	ErrOrderNotFound,
	ErrOrderInFlight,
	ErrNoOrdersToPrepare,
	ErrNegativeCount,
	ErrInvalidCommand,
}

// ErrorKind returns the text of the sentinel err wraps, or "other" when err
// is outside the known set. Returns "" for nil.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "other"
}

package booking

import "hiredaily/models"

// workerTransitions lists, per target status, the statuses a worker may move
// a booking out of.
var workerTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.StatusConfirmed:  {models.StatusPending},
	models.StatusCancelled:  {models.StatusPending},
	models.StatusInProgress: {models.StatusConfirmed},
	models.StatusCompleted:  {models.StatusInProgress},
}

// customerCancellable is every non-terminal status.
var customerCancellable = []models.BookingStatus{
	models.StatusPending,
	models.StatusConfirmed,
	models.StatusInProgress,
}

// CanWorkerTransition reports whether a worker may move a booking from one status to another.
func CanWorkerTransition(from, to models.BookingStatus) bool {
	for _, s := range workerTransitions[to] {
		if s == from {
			return true
		}
	}
	return false
}

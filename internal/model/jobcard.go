package model

import (
	"time"

	"github.com/google/uuid"
)

type JobCardStatus string

const (
	JobCardPending    JobCardStatus = "PENDING"
	JobCardInProgress JobCardStatus = "IN_PROGRESS"
	JobCardOnHold     JobCardStatus = "ON_HOLD"
	JobCardComplete   JobCardStatus = "COMPLETE"
	JobCardCancelled  JobCardStatus = "CANCELLED"
)

var jobCardTransitions = map[JobCardStatus][]JobCardStatus{
	JobCardPending:    {JobCardInProgress, JobCardCancelled},
	JobCardInProgress: {JobCardOnHold, JobCardComplete, JobCardCancelled},
	JobCardOnHold:     {JobCardInProgress, JobCardCancelled},
	JobCardComplete:   {},
	JobCardCancelled:  {},
}

func (s JobCardStatus) CanTransitionTo(next JobCardStatus) bool {
	for _, allowed := range jobCardTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s JobCardStatus) Terminal() bool {
	return s == JobCardComplete || s == JobCardCancelled
}

// JobCard manufactures one order line's product at the primary warehouse.
// Material warnings recorded at start never block the job.
type JobCard struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	OrderID     uuid.UUID
	OrderLineID uuid.UUID
	ProductID   uuid.UUID
	Quantity    int64
	Status      JobCardStatus
	Warnings    []string
	CreatedAt   time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeActionCreated   = "personnel_action.created"
	EventTypeActionCompleted = "personnel_action.completed"
	EventTypeActionRejected  = "personnel_action.rejected"
	EventTypeActionDeleted   = "personnel_action.deleted"
)

type ActionCreatedEvent struct {
	BaseEvent
	ActionID   string `json:"action_id"`
	ActionType string `json:"action_type"`
	EmployeeID string `json:"employee_id"`
}

func NewActionCreatedEvent(actionID, actionType, employeeID string) *ActionCreatedEvent {
	return &ActionCreatedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeActionCreated,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"action_id":   actionID,
				"action_type": actionType,
				"employee_id": employeeID,
				"outcome":     "created",
			},
		},
		ActionID:   actionID,
		ActionType: actionType,
		EmployeeID: employeeID,
	}
}

type ActionCompletedEvent struct {
	BaseEvent
	ActionID   string `json:"action_id"`
	ActionType string `json:"action_type"`
	EmployeeID string `json:"employee_id"`
	// TotalPay carries the refreshed compensation total, zero when the grade
	// had no active salary structure at approval time.
	TotalPay int64 `json:"total_pay"`
}

func NewActionCompletedEvent(actionID, actionType, employeeID string, totalPay int64) *ActionCompletedEvent {
	return &ActionCompletedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeActionCompleted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"action_id":   actionID,
				"action_type": actionType,
				"employee_id": employeeID,
				"outcome":     "completed",
				"total_pay":   totalPay,
			},
		},
		ActionID:   actionID,
		ActionType: actionType,
		EmployeeID: employeeID,
		TotalPay:   totalPay,
	}
}

type ActionRejectedEvent struct {
	BaseEvent
	ActionID   string `json:"action_id"`
	ActionType string `json:"action_type"`
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

func NewActionRejectedEvent(actionID, actionType, employeeID, reason string) *ActionRejectedEvent {
	return &ActionRejectedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeActionRejected,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"action_id":   actionID,
				"action_type": actionType,
				"employee_id": employeeID,
				"outcome":     "rejected",
				"reason":      reason,
			},
		},
		ActionID:   actionID,
		ActionType: actionType,
		EmployeeID: employeeID,
		Reason:     reason,
	}
}

type ActionDeletedEvent struct {
	BaseEvent
	ActionID   string `json:"action_id"`
	ActionType string `json:"action_type"`
	// StatusAtDeletion records whether a pending or already-terminal action
	// was removed; deletion never mutates the employee either way.
	StatusAtDeletion string `json:"status_at_deletion"`
}

func NewActionDeletedEvent(actionID, actionType, statusAtDeletion string) *ActionDeletedEvent {
	return &ActionDeletedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeActionDeleted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"action_id":          actionID,
				"action_type":        actionType,
				"outcome":            "deleted",
				"status_at_deletion": statusAtDeletion,
			},
		},
		ActionID:         actionID,
		ActionType:       actionType,
		StatusAtDeletion: statusAtDeletion,
	}
}

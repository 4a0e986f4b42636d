package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	TypeCleanupAttendance    = "attendance:cleanup"
	TypeCleanupAttendanceAll = "attendance:cleanup_all"
	TypeExpireMemberships    = "membership:expire"
)

type CleanupAttendancePayload struct {
	UserID string `json:"user_id"`
}

func NewCleanupAttendanceTask(userID string) (*asynq.Task, error) {
	payload, err := json.Marshal(CleanupAttendancePayload{UserID: userID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCleanupAttendance, payload), nil
}

func NewCleanupAttendanceAllTask() *asynq.Task {
	return asynq.NewTask(TypeCleanupAttendanceAll, nil)
}

func NewExpireMembershipsTask() *asynq.Task {
	return asynq.NewTask(TypeExpireMemberships, nil)
}

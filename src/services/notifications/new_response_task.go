package notifications

import (
	"encoding/json"
	"log"

	DB "Feedstream-Backend/src/database"
	"Feedstream-Backend/src/models"

	"github.com/hibiken/asynq"
)

const TypeNotifyNewResponse = "responses:notify-new"

type NewResponsePayload struct {
	ResponseID   string `json:"responseId"`
	FormID       string `json:"formId"`
	FormTitle    string `json:"formTitle"`
	DepartmentID string `json:"departmentId"`
	StaffID      string `json:"staffId"`
	Respondent   string `json:"respondent"`
}

func NewNotifyNewResponseTask(p NewResponsePayload) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifyNewResponse, b), nil
}

// EnqueueNewResponse emits the new-response notification event. Strictly
// best-effort: without Redis, or on any enqueue error, it only logs. The
// respondent already got their confirmation.
func EnqueueNewResponse(form *models.Form, response *models.Response) {
	if DB.AsynqClient == nil {
		log.Println("⚠️ Asynq not available, skipping response notification")
		return
	}

	task, err := NewNotifyNewResponseTask(NewResponsePayload{
		ResponseID:   response.ID.Hex(),
		FormID:       form.ID.Hex(),
		FormTitle:    form.Title,
		DepartmentID: form.DepartmentID.Hex(),
		StaffID:      response.StaffID,
		Respondent:   response.Name,
	})
	if err != nil {
		log.Println("⚠️ Failed to build response notification task:", err)
		return
	}

	if _, err := DB.AsynqClient.Enqueue(task); err != nil {
		log.Println("⚠️ Failed to enqueue response notification:", err)
	}
}

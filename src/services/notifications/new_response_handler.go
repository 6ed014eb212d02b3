package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	DB "Feedstream-Backend/src/database"
	"Feedstream-Backend/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterNotificationHandlers wires the notification handlers into the
// worker mux. A missing SMTP config downgrades to store-only
// notifications instead of refusing to start.
func RegisterNotificationHandlers(mux *asynq.ServeMux) {
	sender, err := NewSMTPSenderFromEnv()
	if err != nil {
		log.Println("⚠️ SMTP not configured, notifications will be stored without email:", err)
		mux.HandleFunc(TypeNotifyNewResponse, HandleNotifyNewResponse(nil))
		return
	}
	mux.HandleFunc(TypeNotifyNewResponse, HandleNotifyNewResponse(sender))
}

// HandleNotifyNewResponse records a notification document for the inbox
// and emails the assigned staff member. Every failure here is swallowed:
// the task is acknowledged regardless, because a notification is never
// worth a retry storm against the respondent's submission.
func HandleNotifyNewResponse(sender MailSender) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload NewResponsePayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Println("❌ Notification payload decode error:", err)
			return nil
		}

		formID, _ := primitive.ObjectIDFromHex(payload.FormID)
		responseID, _ := primitive.ObjectIDFromHex(payload.ResponseID)
		deptID, _ := primitive.ObjectIDFromHex(payload.DepartmentID)

		notification := models.Notification{
			ID:           primitive.NewObjectID(),
			Type:         TypeNotifyNewResponse,
			FormID:       formID,
			ResponseID:   responseID,
			DepartmentID: deptID,
			Title:        fmt.Sprintf("New response on %q", payload.FormTitle),
			CreatedAt:    time.Now(),
		}
		if _, err := DB.NotificationCollection.InsertOne(ctx, notification); err != nil {
			log.Println("⚠️ Failed to store notification:", err)
		}

		if sender == nil {
			return nil
		}

		to := recipientEmail(ctx, payload.StaffID)
		if to == "" {
			log.Println("⚠️ No recipient for response notification, skipping email")
			return nil
		}

		subject := fmt.Sprintf("New feedback response: %s", payload.FormTitle)
		body := fmt.Sprintf("<p>%s received a new response", payload.FormTitle)
		if payload.Respondent != "" {
			body += fmt.Sprintf(" from <b>%s</b>", payload.Respondent)
		}
		body += ".</p>"

		if err := sender.Send(to, subject, body); err != nil {
			log.Println("⚠️ Failed to send response notification email:", err)
			return nil
		}

		log.Println("✅ Response notification sent to", to)
		return nil
	}
}

// recipientEmail prefers the assigned staff member's address, falling
// back to the department-wide inbox from the environment.
func recipientEmail(ctx context.Context, staffID string) string {
	if oid, err := primitive.ObjectIDFromHex(staffID); err == nil {
		var staff models.Staff
		if err := DB.StaffCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&staff); err == nil && staff.Email != "" {
			return staff.Email
		}
	}
	return os.Getenv("NOTIFY_FALLBACK_EMAIL")
}

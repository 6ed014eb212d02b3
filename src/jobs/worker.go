package jobs

import (
	"log"

	"Feedstream-Backend/src/database"
	"Feedstream-Backend/src/services/notifications"

	"github.com/hibiken/asynq"
)

// StartWorker runs the asynq server that delivers notifications. It is a
// no-op when Redis is not configured; the API serves fine without it.
func StartWorker() {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("⚠️ Redis not available. Background worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	notifications.RegisterNotificationHandlers(mux)

	go func() {
		log.Println("✅ Background worker started")
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Background worker stopped:", err)
		}
	}()
}

package jobs

import (
	"log"

	"Backend-TripleA/src/database"

	"github.com/hibiken/asynq"
)

// StartWorker runs the asynq worker and scheduler. Blocking; run it in its
// own goroutine. No-op when Redis is not configured.
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Background worker not started.")
		return
	}

	redisOpt := asynq.RedisClientOpt{Addr: database.RedisURI}

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCleanupAttendance, HandleCleanupAttendanceTask)
	mux.HandleFunc(TypeCleanupAttendanceAll, HandleCleanupAttendanceAllTask)
	mux.HandleFunc(TypeExpireMemberships, HandleExpireMembershipsTask)

	scheduler := asynq.NewScheduler(redisOpt, nil)
	if _, err := scheduler.Register("@daily", NewCleanupAttendanceAllTask()); err != nil {
		log.Println("⚠️ Failed to register retention sweep schedule:", err)
	}
	if _, err := scheduler.Register("@daily", NewExpireMembershipsTask()); err != nil {
		log.Println("⚠️ Failed to register membership expiry schedule:", err)
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Println("❌ Asynq scheduler stopped:", err)
		}
	}()

	srv := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 5})
	log.Println("✅ Background worker started")
	if err := srv.Run(mux); err != nil {
		log.Println("❌ Asynq worker stopped:", err)
	}
}

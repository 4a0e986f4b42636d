package attendance

import (
	"context"
	"fmt"
	"log"
	"sync"

	"Backend-TripleA/src/database"
	"Backend-TripleA/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Listener is the explicit handle for one member's live ledger subscription.
// It feeds rows inserted by any client (this device or another) into the
// recent cache until stopped.
type Listener struct {
	userID string
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop tears the subscription down. Safe to call any number of times.
func (l *Listener) Stop() {
	l.once.Do(func() {
		l.cancel()
	})
	<-l.done
}

// StartRealtimeSync opens a change-stream subscription for one member.
// At most one subscription per member: a second call returns the live handle.
func (s *Service) StartRealtimeSync(ctx context.Context, userID string) (*Listener, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.listeners[userID]; ok {
		return l, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "operationType", Value: "insert"},
			{Key: "fullDocument.userId", Value: userID},
		}}},
	}

	// The request ctx bounds the initial handshake only; once open, the
	// stream's lifetime belongs to the handle's own context.
	stream, err := database.AttendanceCollection.Watch(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to open attendance change stream: %w", err)
	}

	streamCtx, cancel := context.WithCancel(context.Background())
	l := &Listener{
		userID: userID,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.listeners[userID] = l

	go s.consume(streamCtx, stream, l)

	log.Println("✅ Realtime attendance listener started for user", userID)
	return l, nil
}

func (s *Service) consume(ctx context.Context, stream *mongo.ChangeStream, l *Listener) {
	defer close(l.done)
	defer stream.Close(context.Background())
	defer func() {
		s.mu.Lock()
		if s.listeners[l.userID] == l {
			delete(s.listeners, l.userID)
		}
		s.mu.Unlock()
	}()

	for stream.Next(ctx) {
		var event struct {
			FullDocument models.AttendanceRecord `bson:"fullDocument"`
		}
		if err := stream.Decode(&event); err != nil {
			log.Println("⚠️ Skipping undecodable change stream event:", err)
			continue
		}
		s.cache.Push(ctx, event.FullDocument)
	}
	if err := stream.Err(); err != nil && ctx.Err() == nil {
		log.Println("❌ Attendance change stream closed with error:", err)
	}
}

// StopRealtimeSync stops the member's subscription if one is live.
func (s *Service) StopRealtimeSync(userID string) {
	s.mu.Lock()
	l, ok := s.listeners[userID]
	s.mu.Unlock()
	if ok {
		l.Stop()
	}
}

// Cleanup stops every live subscription. Called on shutdown.
func (s *Service) Cleanup() {
	s.mu.Lock()
	handles := make([]*Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		handles = append(handles, l)
	}
	s.mu.Unlock()

	for _, l := range handles {
		l.Stop()
	}
}

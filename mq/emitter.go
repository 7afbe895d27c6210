package mq

import (
	"context"
	"encoding/json"
	"log"

	"ustabul/models"
	"ustabul/rdx"
	"ustabul/search"
)

const indexingChannel = "indexing-events"

// Emit publishes an indexing event to Redis. Handlers call this in a
// goroutine after their write succeeds; indexing failures never fail the
// request.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] failed to marshal %s event: %v", eventName, err)
		return
	}

	// The publish must survive the request context being canceled once the
	// handler returns, but still carries its values for tracing.
	if err := rdx.Conn.Publish(context.WithoutCancel(ctx), indexingChannel, data).Err(); err != nil {
		log.Printf("[Emit] failed to publish %s event: %v", eventName, err)
	}
}

// StartIndexingWorker consumes indexing events and keeps the Redis search
// index in sync with Mongo.
func StartIndexingWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, indexingChannel)
	ch := sub.Channel()

	log.Println("[IndexingWorker] listening for indexing events")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[IndexingWorker] failed to parse event: %v", err)
			continue
		}

		if err := search.IndexEntity(ctx, event); err != nil {
			log.Printf("[IndexingWorker] index error for %s %s: %v",
				event.EntityType, event.EntityId, err)
		}
	}
}

// Package search maintains a small Redis inverted index over jobs and worker
// profiles and serves the /api/search endpoint from it. The index is fed
// asynchronously by mq events; Mongo stays the source of truth.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"ustabul/db"
	"ustabul/models"
	"ustabul/rdx"
)

// Entity is the summary stored per indexed document.
type Entity struct {
	EntityID   string `json:"entityid"`
	EntityType string `json:"entitytype"`
	Title      string `json:"title"`
	Category   string `json:"category,omitempty"`
	City       string `json:"city,omitempty"`
}

var tokenRegex = regexp.MustCompile(`[\p{L}0-9]+`)

// Tokenize lowercases and splits text into unique word tokens. Turkish text,
// so no ASCII-only shortcuts.
func Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	matches := tokenRegex.FindAllString(text, -1)

	out := make([]string, 0, len(matches))
	seen := map[string]struct{}{}
	for _, m := range matches {
		t := strings.ToLower(m)
		if len(t) < 2 {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func entityKey(id string) string       { return "search:entity:" + id }
func invertedKey(token string) string  { return "search:inverted:" + token }
func typeKey(entityType string) string { return "search:type:" + entityType }

// IndexEntity applies one indexing event: upsert on POST/PUT, removal on
// DELETE.
func IndexEntity(ctx context.Context, event models.Index) error {
	if event.Method == "DELETE" {
		return removeEntity(ctx, event.EntityId)
	}

	entity, text, err := fetchEntity(ctx, event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return removeEntity(ctx, event.EntityId)
		}
		return err
	}

	data, err := json.Marshal(entity)
	if err != nil {
		return err
	}

	pipe := rdx.Conn.Pipeline()
	pipe.Set(ctx, entityKey(entity.EntityID), data, 0)
	pipe.SAdd(ctx, typeKey(entity.EntityType), entity.EntityID)
	for _, token := range Tokenize(text) {
		pipe.SAdd(ctx, invertedKey(token), entity.EntityID)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func fetchEntity(ctx context.Context, event models.Index) (Entity, string, error) {
	switch event.EntityType {
	case "job":
		var job models.Job
		err := db.JobCollection.FindOne(ctx, bson.M{"jobid": event.EntityId}).Decode(&job)
		if err != nil {
			return Entity{}, "", err
		}
		entity := Entity{
			EntityID:   job.JobID,
			EntityType: "job",
			Title:      job.Title,
			Category:   job.Category,
			City:       job.Address.City,
		}
		text := strings.Join([]string{job.Title, job.Category, job.Address.City, job.Description}, " ")
		return entity, text, nil

	case "worker":
		var profile models.WorkerProfile
		err := db.WorkerProfileCollection.FindOne(ctx, bson.M{"userid": event.EntityId}).Decode(&profile)
		if err != nil {
			return Entity{}, "", err
		}
		parts := []string{profile.Bio, profile.Location.City}
		for _, skill := range profile.Skills {
			parts = append(parts, skill.SubCategory)
		}
		entity := Entity{
			EntityID:   profile.UserID,
			EntityType: "worker",
			Title:      profile.Bio,
			City:       profile.Location.City,
		}
		return entity, strings.Join(parts, " "), nil

	default:
		return Entity{}, "", fmt.Errorf("unknown entity type %q", event.EntityType)
	}
}

func removeEntity(ctx context.Context, id string) error {
	pipe := rdx.Conn.Pipeline()
	pipe.Del(ctx, entityKey(id))
	pipe.SRem(ctx, typeKey("job"), id)
	pipe.SRem(ctx, typeKey("worker"), id)
	_, err := pipe.Exec(ctx)
	return err
}

// Query returns indexed entities matching every token of q, optionally
// restricted to one entity type.
func Query(ctx context.Context, q, entityType string, limit int) ([]Entity, error) {
	tokens := Tokenize(q)
	if len(tokens) == 0 {
		return []Entity{}, nil
	}

	keys := make([]string, 0, len(tokens)+1)
	for _, token := range tokens {
		keys = append(keys, invertedKey(token))
	}
	if entityType != "" {
		keys = append(keys, typeKey(entityType))
	}

	ids, err := rdx.Conn.SInter(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	results := []Entity{}
	for _, id := range ids {
		if len(results) >= limit {
			break
		}
		raw, err := rdx.Conn.Get(ctx, entityKey(id)).Result()
		if err != nil {
			continue
		}
		var ent Entity
		if err := json.Unmarshal([]byte(raw), &ent); err != nil {
			continue
		}
		results = append(results, ent)
	}
	return results, nil
}

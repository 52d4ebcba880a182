// Package kafka publishes audit events to a Kafka topic keyed by package
// name, so all events for one application land in one partition in order.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"apptrust/internal/platform/kafka/producer"
	dErrors "apptrust/pkg/domain-errors"
	audit "apptrust/pkg/platform/audit"
)

// topicFor routes categories to topics so retention can differ per category.
func topicFor(category audit.EventCategory) string {
	switch category {
	case audit.CategorySecurity:
		return "apptrust.audit.security"
	default:
		return "apptrust.audit.ops"
	}
}

// Store implements audit.Store by producing events to Kafka. Reads are not
// served from Kafka; pair this store with a queryable one when the admin
// surface needs listings.
type Store struct {
	producer *producer.Producer
}

func NewStore(p *producer.Producer) *Store {
	return &Store{producer: p}
}

func (s *Store) Append(ctx context.Context, event audit.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	return s.producer.Publish(ctx, producer.Message{
		Topic: topicFor(event.Category),
		Key:   []byte(event.Package),
		Value: payload,
	})
}

func (s *Store) ListByPackage(ctx context.Context, pkg string) ([]audit.Event, error) {
	return nil, dErrors.New(dErrors.CodeBadRequest, "kafka audit store is write-only")
}

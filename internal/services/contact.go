package services

import (
	"context"
	"encoding/json"
	"html"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sbilibin2017/site-content-api/internal/logger"
	"github.com/sbilibin2017/site-content-api/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=contact.go -destination=contact_mock.go -package=services

// ContactWriter stores contact messages.
type ContactWriter interface {
	Create(ctx context.Context, msg models.ContactMessage) (*models.ContactMessage, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// ContactService stores public contact submissions and announces them on Kafka.
type ContactService struct {
	writer      ContactWriter
	kafkaWriter KafkaWriter
	policy      *bluemonday.Policy
}

// NewContactService creates a new ContactService. kafkaWriter may be nil.
func NewContactService(writer ContactWriter, kafkaWriter KafkaWriter) *ContactService {
	return &ContactService{
		writer:      writer,
		kafkaWriter: kafkaWriter,
		policy:      bluemonday.StrictPolicy(),
	}
}

// Submit strips markup from the free-text fields, stores the message and publishes it.
func (s *ContactService) Submit(ctx context.Context, in models.ContactInput) (*models.ContactMessage, error) {
	in.Name = s.clean(in.Name)
	in.Phone = s.clean(in.Phone)
	in.Message = s.clean(in.Message)
	in.Email = strings.TrimSpace(in.Email)

	if err := in.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.writer.Create(ctx, in.Build())
	if err != nil {
		logger.Log.Errorw("failed to save contact message", "error", err)
		return nil, err
	}

	s.publish(ctx, saved)
	return saved, nil
}

// clean removes every HTML element and returns plain text.
func (s *ContactService) clean(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
}

// publish sends the message to Kafka. Failures are logged only.
func (s *ContactService) publish(ctx context.Context, m *models.ContactMessage) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "message_id", m.ID)
		return
	}

	data, err := json.Marshal(m)
	if err != nil {
		logger.Log.Errorw("Failed to marshal contact message for Kafka", "message_id", m.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(m.ID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish contact message to Kafka", "message_id", m.ID, "error", err)
	} else {
		logger.Log.Infow("Contact message published to Kafka", "message_id", m.ID)
	}
}

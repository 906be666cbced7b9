package services

//go:generate mockgen -source=download.go -destination=download_mock.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-tools-directory/internal/identity"
	"github.com/sbilibin2017/gw-tools-directory/internal/logger"
	"github.com/sbilibin2017/gw-tools-directory/internal/metrics"
	"github.com/sbilibin2017/gw-tools-directory/internal/models"
	"github.com/sbilibin2017/gw-tools-directory/internal/validation"
	"github.com/segmentio/kafka-go"
)

// DownloadWriter appends download rows.
type DownloadWriter interface {
	Save(ctx context.Context, userID, toolID uuid.UUID, buttonLabel string) (*models.DownloadDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// DownloadService records downloads and publishes them as events.
type DownloadService struct {
	writer      DownloadWriter
	tools       ToolLookup
	users       MirrorEnsurer
	kafkaWriter KafkaWriter
}

// NewDownloadService creates a new DownloadService. kafkaWriter may be nil.
func NewDownloadService(writer DownloadWriter, tools ToolLookup, users MirrorEnsurer, kafkaWriter KafkaWriter) *DownloadService {
	return &DownloadService{writer: writer, tools: tools, users: users, kafkaWriter: kafkaWriter}
}

// Record stores a download of the tool by user and publishes the event.
func (s *DownloadService) Record(ctx context.Context, user *identity.User, req models.DownloadRequest) (*models.DownloadDB, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	toolID, err := uuid.Parse(req.ToolID)
	if err != nil {
		return nil, &validation.Error{Field: "tool_id", Message: "tool_id must be a valid id"}
	}

	if err := lookupTool(ctx, s.tools, toolID); err != nil {
		return nil, err
	}
	if err := s.users.EnsureMirror(ctx, user); err != nil {
		return nil, err
	}

	download, err := s.writer.Save(ctx, user.ID, toolID, req.ButtonLabel)
	if err != nil {
		logger.Log.Errorw("failed to save download", "user_id", user.ID, "tool_id", toolID, "error", err)
		return nil, err
	}
	metrics.RecordDownload()

	s.publishDownload(ctx, models.DownloadEvent{
		EventID:     download.ID.String(),
		UserID:      user.ID.String(),
		ToolID:      toolID.String(),
		ButtonLabel: download.ButtonLabel,
		Timestamp:   time.Now().Unix(),
	})

	return download, nil
}

// publishDownload publishes a download event to Kafka. Failures are logged only.
func (s *DownloadService) publishDownload(ctx context.Context, event models.DownloadEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal download event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ToolID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish download event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Download event published to Kafka", "event_id", event.EventID, "tool_id", event.ToolID)
	}
}

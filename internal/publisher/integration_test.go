//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"church_backend/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) registration() *domain.Registration {
	return &domain.Registration{
		ID:                 "4f9d4a2e-1d7c-4c6a-9a1f-3f2a7b4c5d6e",
		ParticipantName:    "Daniel Rivera",
		ParentGuardianName: "Maria Rivera",
		Sex:                "male",
		Age:                14,
		ContactPhone:       "(555) 123-4567",
		ContactEmail:       "maria@example.com",
		EmergencyName:      "Jose Rivera",
		EmergencyPhone:     "(555) 765-4321",
		EmergencyRelation:  "father",
		WaiverAccepted:     true,
		ParentSignature:    "Maria Rivera",
		Status:             domain.RegistrationStatusPending,
		CampYear:           2026,
		CampDates:          "July 13-17, 2026",
		CreatedAt:          time.Now().Truncate(time.Millisecond),
	}
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishCreated() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-created",
		RoutingKey: "test-routing-key-created",
		QueueName:  "test-queue-created",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	reg := s.registration()
	err = pub.PublishRegistration(s.ctx, reg, "created")
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received RegistrationMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("created", received.Action)
	s.Equal(reg.ID, received.Registration.ID)
	s.Equal("Daniel Rivera", received.Registration.ParticipantName)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishStatusChanged() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-status",
		RoutingKey: "test-routing-key-status",
		QueueName:  "test-queue-status",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	reg := s.registration()
	reg.Status = domain.RegistrationStatusApproved
	err = pub.PublishRegistration(s.ctx, reg, "status_changed")
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.NotNil(msg)

	var received RegistrationMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("status_changed", received.Action)
	s.Equal(domain.RegistrationStatusApproved, received.Registration.Status)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_MessageFormat() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-format",
		RoutingKey: "test-routing-key-format",
		QueueName:  "test-queue-format",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	reg := s.registration()
	reg.MedicalConditions = "asthma"
	reg.Allergies = "peanuts"
	err = pub.PublishRegistration(s.ctx, reg, "created")
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	s.Equal("application/json", msg.ContentType)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)

	var received RegistrationMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)

	s.Equal("Maria Rivera", received.Registration.ParentGuardianName)
	s.Equal(14, received.Registration.Age)
	s.Equal("asthma", received.Registration.MedicalConditions)
	s.Equal("peanuts", received.Registration.Allergies)
	s.Equal("July 13-17, 2026", received.Registration.CampDates)
	s.True(received.Registration.WaiverAccepted)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("Timeout waiting for message")
		return nil
	}
}

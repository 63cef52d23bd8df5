package events

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
	"studio-backend/entity"
	"studio-backend/log"
)

const ProjectsExchange = "projects"

const (
	ProjectCreated  = "project.created"
	ProjectUpdated  = "project.updated"
	ProjectAssigned = "project.assigned"
	ProjectDeleted  = "project.deleted"
)

// Publisher fans project lifecycle events out over a topic exchange so
// other services (mail, billing, audit) can follow along.
type Publisher struct {
	conn *amqp.Connection

	lock sync.Mutex
	ch   *amqp.Channel
}

// Dial connects with exponential backoff and declares the exchange.
func Dial(connString string) (*Publisher, error) {
	var conn *amqp.Connection
	t := time.Second
	for i := 0; i < 6; i++ {
		var err error
		conn, err = amqp.Dial(connString)
		if err != nil {
			if i == 5 {
				return nil, err
			}
			time.Sleep(t)
			t *= 2

			continue
		}

		break
	}
	log.Logger.Info("connected to rabbitmq")

	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		ProjectsExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &Publisher{conn: conn, ch: ch}, nil
}

func (p *Publisher) Close() error {
	return p.conn.Close()
}

func (p *Publisher) publish(routingKey string, project *entity.Project) {
	body, err := json.Marshal(project)
	if err != nil {
		log.Logger.Error("failed to encode event", zap.Error(err))
		return
	}

	id, err := uuid.NewUUID()
	if err != nil {
		log.Logger.Error("failed to generate message id", zap.Error(err))
		return
	}

	p.lock.Lock()
	defer p.lock.Unlock()

	err = p.ch.Publish(ProjectsExchange, routingKey, false, false, amqp.Publishing{
		MessageId:   id.String(),
		ContentType: "application/json",
		Timestamp:   time.Now(),
		Body:        body,
	})
	if err != nil {
		log.Logger.Error("failed to publish event",
			zap.String("routing_key", routingKey),
			zap.Error(err))
	}
}

func (p *Publisher) ProjectCreated(project *entity.Project)  { p.publish(ProjectCreated, project) }
func (p *Publisher) ProjectUpdated(project *entity.Project)  { p.publish(ProjectUpdated, project) }
func (p *Publisher) ProjectAssigned(project *entity.Project) { p.publish(ProjectAssigned, project) }
func (p *Publisher) ProjectDeleted(project *entity.Project)  { p.publish(ProjectDeleted, project) }

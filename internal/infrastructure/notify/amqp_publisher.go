package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/davidmtzc/inventra-api/internal/application/alerts"
	"github.com/davidmtzc/inventra-api/internal/domain/entity"
	"github.com/davidmtzc/inventra-api/pkg/logger"
)

var _ alerts.Notifier = (*AMQPPublisher)(nil)

// alertEvent payload JSON publicado por cada alerta creada.
type alertEvent struct {
	AlertID     string    `json:"alert_id"`
	ProductID   string    `json:"product_id"`
	ProductCode string    `json:"product_code"`
	ProductName string    `json:"product_name"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// AMQPPublisher publica eventos de alerta en un exchange topic de RabbitMQ.
// Routing key: alert.<categoría>. Los fallos de publicación se registran y se
// descartan: la alerta ya quedó persistida.
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      *logger.Logger
}

// NewAMQPPublisher conecta a RabbitMQ y declara el exchange.
func NewAMQPPublisher(url, exchange string, log *logger.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("conectar a RabbitMQ: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("abrir canal: %w", err)
	}
	if err := channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declarar exchange %s: %w", exchange, err)
	}
	return &AMQPPublisher{conn: conn, channel: channel, exchange: exchange, log: log}, nil
}

// Notify publica el evento de la alerta.
func (p *AMQPPublisher) Notify(ctx context.Context, alert *entity.Alert, product *entity.Product) {
	event := alertEvent{
		AlertID:     alert.ID,
		ProductID:   product.ID,
		ProductCode: product.Code,
		ProductName: product.Name,
		Category:    string(alert.Category),
		Priority:    string(alert.Priority),
		Title:       alert.Title,
		Message:     alert.Message,
		CreatedAt:   alert.CreatedAt,
	}
	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error().Err(err).Str("alert_id", alert.ID).Msg("serializar evento de alerta falló")
		return
	}

	routingKey := "alert." + string(alert.Category)
	err = p.channel.PublishWithContext(ctx,
		p.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		p.log.Error().Err(err).
			Str("alert_id", alert.ID).
			Str("routing_key", routingKey).
			Msg("publicar evento de alerta falló")
		return
	}
	p.log.Debug().
		Str("alert_id", alert.ID).
		Str("routing_key", routingKey).
		Msg("evento de alerta publicado")
}

// Close cierra canal y conexión.
func (p *AMQPPublisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

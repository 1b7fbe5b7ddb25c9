package mailer

import (
	"context"
	"fmt"
	"medibook-service/internal/app/drivers/mailer"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"net/smtp"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Worker drains the notification queue and delivers emails over SMTP.
// Delivery is best effort: a failed send is logged and the message acked
// anyway, so a broken mail host can never wedge the queue.
type Worker struct {
	log     *zap.Logger
	client  *mailer.SMTPClient
	channel *amqp.Channel
	queue   string
	limiter *rate.Limiter
	stop    chan struct{}
}

func NewWorker(log *zap.Logger, client *mailer.SMTPClient, conn *amqp.Connection, queue string, sendsPerSecond int) (*Worker, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	if err := channel.Qos(1, 0, false); err != nil {
		return nil, err
	}

	if sendsPerSecond <= 0 {
		sendsPerSecond = 1
	}

	return &Worker{
		log:     log,
		client:  client,
		channel: channel,
		queue:   queue,
		limiter: rate.NewLimiter(rate.Limit(sendsPerSecond), 1),
		stop:    make(chan struct{}),
	}, nil
}

// Start begins consuming. It returns a stop function that halts the loop.
func (w *Worker) Start(ctx context.Context) (stop func(), err error) {
	deliveries, err := w.channel.Consume(w.queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.handleDelivery(ctx, delivery)
			}
		}
	}()

	w.log.Info("mailer.Worker started",
		zap.String(constvars.LoggingQueueKey, w.queue),
	)

	return func() {
		close(w.stop)
		<-stopped
	}, nil
}

func (w *Worker) handleDelivery(ctx context.Context, delivery amqp.Delivery) {
	// Ack regardless of outcome; notifications carry no delivery guarantee.
	defer delivery.Ack(false)

	var payload requests.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		w.log.Error("mailer.Worker cannot decode queued payload",
			zap.String(constvars.LoggingQueueKey, w.queue),
			zap.Error(err),
		)
		return
	}

	if err := w.limiter.Wait(ctx); err != nil {
		return
	}

	if err := w.send(&payload); err != nil {
		w.log.Error("mailer.Worker failed to send email",
			zap.String(constvars.LoggingQueueKey, w.queue),
			zap.String(constvars.LoggingRecipientKey, payload.Recipient),
			zap.Error(err),
		)
		return
	}

	w.log.Info("mailer.Worker sent email",
		zap.String(constvars.LoggingRecipientKey, payload.Recipient),
	)
}

func (w *Worker) send(payload *requests.EmailPayload) error {
	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s\r\n", payload.Recipient, payload.Subject, payload.Body))
	addr := fmt.Sprintf("%s:%d", w.client.Host, w.client.Port)
	return smtp.SendMail(addr, w.client.Auth, w.client.EmailSender, []string{payload.Recipient}, msg)
}

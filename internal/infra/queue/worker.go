package queue

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// MailDeliverer is the contract the worker needs from the SMTP side.
type MailDeliverer interface {
	Send(to, subject, templateName string, data map[string]string) error
}

// Worker drains the notification queue and hands each payload to the mailer.
// Delivery is best-effort: a failed send is nacked without requeue and parks
// on the DLQ. Nothing here ever reaches back into a request path.
type Worker struct {
	Channel *amqp.Channel
	Mailer  MailDeliverer
}

func NewWorker(ch *amqp.Channel, mailer MailDeliverer) *Worker {
	return &Worker{
		Channel: ch,
		Mailer:  mailer,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual ack after the SMTP send)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("notification worker: consume failed: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload NotificationPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[WORKER] malformed notification, dropping: %s", err)
				d.Nack(false, false)
				continue
			}

			if err := w.Mailer.Send(payload.To, payload.Subject, payload.Template, payload.Data); err != nil {
				log.Printf("[WORKER] delivery failed to %s (%s): %s", payload.To, payload.Template, err)
				d.Nack(false, false)
				continue
			}

			log.Printf("[WORKER] notification %q delivered to %s", payload.Template, payload.To)
			d.Ack(false)
		}
	}()

	log.Printf(" [*] notification worker waiting on queue '%s'", queueName)
	<-forever
}

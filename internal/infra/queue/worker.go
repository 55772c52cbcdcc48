package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"leaddesk/internal/entity"
)

// OutreachSender sends the first-touch message for a dispatched lead.
type OutreachSender interface {
	SendOutreach(to, firstName, lastName, campaignName string) error
}

// Worker consumes outreach dispatches: it sends the outreach email and
// appends an invitation_request interaction to the lead's history.
type Worker struct {
	Channel      *amqp.Channel
	Sender       OutreachSender
	Interactions entity.InteractionRepositoryInterface
}

func NewWorker(ch *amqp.Channel, sender OutreachSender, interactions entity.InteractionRepositoryInterface) *Worker {
	return &Worker{
		Channel:      ch,
		Sender:       sender,
		Interactions: interactions,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("register outreach consumer: %s", err)
	}

	for d := range msgs {
		var payload OutreachPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			log.Printf("[worker] malformed dispatch, sending to DLQ: %s", err)
			d.Nack(false, false)
			continue
		}

		if err := w.processDispatch(context.Background(), payload); err != nil {
			log.Printf("[worker] dispatch for lead %s failed: %s", payload.LeadID, err)
			d.Nack(false, false)
			continue
		}

		log.Printf("[worker] outreach sent to %s (campaign %q)", payload.Email, payload.CampaignName)
		d.Ack(false)
	}
}

func (w *Worker) processDispatch(ctx context.Context, payload OutreachPayload) error {
	if err := w.Sender.SendOutreach(payload.Email, payload.FirstName, payload.LastName, payload.CampaignName); err != nil {
		return err
	}

	it := entity.NewLeadInteraction(payload.LeadID, entity.InteractionInvitationRequest, "")
	it.Status = entity.InteractionStatusSent
	return w.Interactions.Create(ctx, it)
}

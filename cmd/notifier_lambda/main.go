package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/check-ledger/pkg/notify"
)

// HandleRequest processes SQS messages and delivers the notifications.
// Delivery is a mock: the SMS that would go out is logged. Swapping in
// a real SMS provider only touches this function.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var event notify.Event
		if err := json.Unmarshal([]byte(message.Body), &event); err != nil {
			log.Printf("ERROR: failed to unmarshal event from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		if event.Phone == "" {
			log.Printf("Skipping %s event for check %s: no phone on file", event.Type, event.CheckId)
			continue
		}

		log.Printf("MOCK SMS to %s (%s): %s check %s amount %s ILS",
			event.Phone, event.ContactName, event.Type, event.CheckNumber, event.Amount)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}

package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/check-ledger/pkg/handlers"
	"github.com/chris/check-ledger/pkg/notify"
	dydbstore "github.com/chris/check-ledger/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	tables := dydbstore.Tables{
		Outgoing:   os.Getenv("DYNAMODB_OUTGOING_CHECKS_TABLE_NAME"),
		Incoming:   os.Getenv("DYNAMODB_INCOMING_CHECKS_TABLE_NAME"),
		Series:     os.Getenv("DYNAMODB_SERIES_TABLE_NAME"),
		CheckBooks: os.Getenv("DYNAMODB_CHECK_BOOKS_TABLE_NAME"),
		Contacts:   os.Getenv("DYNAMODB_CONTACTS_TABLE_NAME"),
		Numbers:    os.Getenv("DYNAMODB_CHECK_NUMBERS_TABLE_NAME"),
	}
	if tables.Outgoing == "" || tables.Incoming == "" || tables.Series == "" ||
		tables.CheckBooks == "" || tables.Contacts == "" || tables.Numbers == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// Notification publisher. The SQS queue is optional; without it
	// events are dropped.
	var publisher notify.Publisher = notify.NoOpPublisher{}
	if queueURL := os.Getenv("SQS_NOTIFICATIONS_QUEUE_URL"); queueURL != "" {
		publisher = notify.NewSQSPublisher(sqs.NewFromConfig(cfg), queueURL)
	} else {
		log.Println("SQS_NOTIFICATIONS_QUEUE_URL not set, notifications disabled")
	}

	// Create our storage implementation
	store := dydbstore.New(dbClient, tables)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	router := handlers.NewRouter(store, publisher, logger)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

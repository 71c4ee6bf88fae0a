package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	StorageBackendMemory   = "memory"
	StorageBackendDynamoDB = "dynamodb"
	StorageBackendPostgres = "postgres"
)

// Config is read once by the composition root. Core packages never touch the
// environment.
type Config struct {
	Port               int
	StorageBackend     string
	InvoicesStorageKey string
	PaymentsStorageKey string

	BlobTable          string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	DatabaseURL string

	StrictValidation bool

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
}

func Load() *Config {
	return &Config{
		Port:                   getEnvInt("PORT", 8080),
		StorageBackend:         strings.ToLower(getEnvOrDefault("STORAGE_BACKEND", StorageBackendMemory)),
		InvoicesStorageKey:     getEnvOrDefault("INVOICES_STORAGE_KEY", "invoices"),
		PaymentsStorageKey:     getEnvOrDefault("PAYMENTS_STORAGE_KEY", "invoice_payments"),
		BlobTable:              getEnvOrDefault("BLOB_TABLE", "invoice_blobs"),
		AWSRegion:              getEnvOrDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:         getEnvOrDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey:     getEnvOrDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:       os.Getenv("DYNAMODB_ENDPOINT"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		StrictValidation:       getEnvBool("INVOICE_STRICT_VALIDATION"),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     getEnvBool("PAYMENT_GATEWAY_MOCK") || getEnvBool("MERCADOPAGO_MOCK"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

func getEnvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

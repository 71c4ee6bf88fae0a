package database

import (
	"context"
	"testing"

	"invoicer/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBClient_Endpoint(t *testing.T) {
	cfg := &config.Config{
		AWSRegion:          "sa-east-1",
		AWSAccessKeyID:     "local",
		AWSSecretAccessKey: "local",
		DynamoDBEndpoint:   "http://localhost:8000",
	}

	client, err := NewDynamoDBClient(context.Background(), cfg)
	require.NoError(t, err)

	opts := client.Options()
	assert.Equal(t, "sa-east-1", opts.Region)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://localhost:8000", *opts.BaseEndpoint)

	creds, err := opts.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}

func TestConnectPostgres_MissingURL(t *testing.T) {
	_, err := ConnectPostgres(&config.Config{})
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
}

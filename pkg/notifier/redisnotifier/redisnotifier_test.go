package redisnotifier_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"accounts/pkg/domain"
	"accounts/pkg/notifier/redisnotifier"
)

const testStream = "accounts.events"

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379"},
			WaitingFor:   wait.ForListeningPort("6379"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mappedPort, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, mappedPort.Int()),
	})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func TestSendDeleteNotification(t *testing.T) {
	ctx := context.Background()
	client := setupTestRedis(t)
	n := redisnotifier.New(client, redisnotifier.Options{Stream: testStream})

	account := domain.Account{
		ID:        domain.AccountID(uuid.New()),
		Username:  "jdoe",
		Password:  "secret",
		FirstName: "John",
		LastName:  "Doe",
	}

	err := n.SendDeleteNotification(ctx, account.ID.String(), account)
	require.NoError(t, err)

	entries, err := client.XRange(ctx, testStream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	raw, ok := entries[0].Values["event"].(string)
	require.True(t, ok)

	var event struct {
		Type    string         `json:"type"`
		Key     string         `json:"key"`
		Account map[string]any `json:"account"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &event))
	require.Equal(t, redisnotifier.EventTypeAccountDeleted, event.Type)
	require.Equal(t, account.ID.String(), event.Key)
	require.Equal(t, account.ID.String(), event.Account["id"])
	require.Equal(t, "jdoe", event.Account["username"])
	require.Equal(t, "John", event.Account["firstName"])
	require.Equal(t, "Doe", event.Account["lastName"])
	require.NotContains(t, event.Account, "password")
}

package webhook

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/shenikar/election_monitoring/internal/models"
	redisclient "github.com/shenikar/election_monitoring/pkg/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPublisher_Notify(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}
	ctx := context.Background()
	client, err := redisclient.NewRedisClient(ctx, addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	publisher := NewRedisPublisher(client)
	publisher.queueKey = "store_events_test"
	require.NoError(t, client.Del(ctx, publisher.queueKey).Err())

	event, _ := testEvent()
	require.NoError(t, publisher.Notify(ctx, event))

	raw, err := client.RPop(ctx, publisher.queueKey).Result()
	require.NoError(t, err)
	var got models.ChangeEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	assert.Equal(t, event, got)
}

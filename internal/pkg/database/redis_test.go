package database

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"

	"github.com/sentinela-app/sentinela/internal/pkg/models"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host: "invalid-host",
		Port: 9999,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	ctx := context.Background()

	mock.ExpectSet("alert:status:abc", "active", time.Minute).SetVal("OK")
	err := client.Set(ctx, "alert:status:abc", "active", time.Minute)
	assert.NoError(t, err)

	mock.ExpectGet("alert:status:abc").SetVal("active")
	val, err := client.Get(ctx, "alert:status:abc")
	assert.NoError(t, err)
	assert.Equal(t, "active", val)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectDel("alert:position:abc").SetVal(1)
	err := client.Delete(context.Background(), "alert:position:abc")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

package store

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisKV_Get(t *testing.T) {
	client, mock := redismock.NewClientMock()
	kv := NewRedisKV(client)

	mock.ExpectGet("user:u1:profile").SetVal(`{"name":"Aftab"}`)

	value, err := kv.Get(context.Background(), "user:u1:profile")
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Aftab"}`, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisKV_GetMissingKey(t *testing.T) {
	client, mock := redismock.NewClientMock()
	kv := NewRedisKV(client)

	mock.ExpectGet("user:u1:profile").RedisNil()

	_, err := kv.Get(context.Background(), "user:u1:profile")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisKV_SetWithoutTTL(t *testing.T) {
	client, mock := redismock.NewClientMock()
	kv := NewRedisKV(client)

	mock.ExpectSet("user:u1:logged_in", "true", 0).SetVal("OK")

	require.NoError(t, kv.Set(context.Background(), "user:u1:logged_in", "true"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisKV_Delete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	kv := NewRedisKV(client)

	mock.ExpectDel("user:u1:logged_in", "user:u1:profile").SetVal(2)

	require.NoError(t, kv.Delete(context.Background(), "user:u1:logged_in", "user:u1:profile"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisKV_DeleteNoKeysIsNoOp(t *testing.T) {
	client, mock := redismock.NewClientMock()
	kv := NewRedisKV(client)

	require.NoError(t, kv.Delete(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

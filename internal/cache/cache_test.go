package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Slug string `json:"slug"`
}

func TestGetJSON_Hit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := New(db, "eaglegym")

	mock.ExpectGet("eaglegym:branch:qoopa").SetVal(`{"slug":"qoopa"}`)

	var got entry
	hit, err := store.GetJSON(context.Background(), "branch:qoopa", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "qoopa", got.Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetJSON_Miss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := New(db, "eaglegym")

	mock.ExpectGet("eaglegym:branch:qoopa").RedisNil()

	var got entry
	hit, err := store.GetJSON(context.Background(), "branch:qoopa", &got)
	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestGetJSON_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := New(db, "eaglegym")

	mock.ExpectGet("eaglegym:branch:qoopa").SetErr(errors.New("connection refused"))

	var got entry
	hit, err := store.GetJSON(context.Background(), "branch:qoopa", &got)
	assert.Error(t, err)
	assert.False(t, hit)
}

func TestSetJSON(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := New(db, "eaglegym")

	mock.ExpectSet("eaglegym:branch:fostat", `{"slug":"fostat"}`, time.Minute).SetVal("OK")

	err := store.SetJSON(context.Background(), "branch:fostat", entry{Slug: "fostat"}, time.Minute)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDisabledStore(t *testing.T) {
	var nilStore *Store
	assert.False(t, nilStore.Enabled())

	store := New(nil, "eaglegym")
	assert.False(t, store.Enabled())

	var got entry
	hit, err := store.GetJSON(context.Background(), "k", &got)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, store.SetJSON(context.Background(), "k", entry{}, time.Minute))
	assert.NoError(t, store.Close())
}

func TestConnect_EmptyAddr(t *testing.T) {
	assert.Nil(t, Connect(""))
}

func TestPingContext(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := New(db, "eaglegym")

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, store.PingContext(context.Background()))

	mock.ExpectPing().SetErr(errors.New("connection refused"))
	assert.Error(t, store.PingContext(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPingContext_Disabled(t *testing.T) {
	store := New(nil, "eaglegym")
	assert.ErrorIs(t, store.PingContext(context.Background()), ErrDisabled)
}

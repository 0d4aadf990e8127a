package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisStoreTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	store  Store
	ctx    context.Context
}

func (s *RedisStoreTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	store, err := NewRedis(&Config{
		RedisClient: s.client,
		KeyPrefix:   "dutch:",
	})
	s.Require().NoError(err)
	s.store = store
	s.ctx = context.Background()
}

func (s *RedisStoreTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}

func (s *RedisStoreTestSuite) TestSetAndGet() {
	s.Require().NoError(s.store.Set(s.ctx, "current_dutch_game", `{"gameId":"g1"}`))

	value, err := s.store.Get(s.ctx, "current_dutch_game")
	s.Require().NoError(err)
	s.Equal(`{"gameId":"g1"}`, value)

	// the prefix is applied on the wire
	raw, err := s.mr.Get("dutch:current_dutch_game")
	s.Require().NoError(err)
	s.Equal(`{"gameId":"g1"}`, raw)
}

func (s *RedisStoreTestSuite) TestGetMissing() {
	_, err := s.store.Get(s.ctx, "nope")
	s.ErrorIs(err, ErrKeyNotFound)
}

func (s *RedisStoreTestSuite) TestLastWriteWins() {
	s.Require().NoError(s.store.Set(s.ctx, "k", "one"))
	s.Require().NoError(s.store.Set(s.ctx, "k", "two"))

	value, err := s.store.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal("two", value)
}

func (s *RedisStoreTestSuite) TestRemove() {
	s.Require().NoError(s.store.Set(s.ctx, "k", "v"))
	s.Require().NoError(s.store.Remove(s.ctx, "k"))

	_, err := s.store.Get(s.ctx, "k")
	s.ErrorIs(err, ErrKeyNotFound)

	// removing again is fine
	s.NoError(s.store.Remove(s.ctx, "k"))
}

func (s *RedisStoreTestSuite) TestEmptyKey() {
	s.Error(s.store.Set(s.ctx, "", "v"))
	_, err := s.store.Get(s.ctx, "")
	s.Error(err)
	s.Error(s.store.Remove(s.ctx, ""))
}

func (s *RedisStoreTestSuite) TestNewRedisValidation() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisStoreTestSuite) TestNewRedisUnreachable() {
	other, err := miniredis.Run()
	s.Require().NoError(err)
	client := redis.NewClient(&redis.Options{Addr: other.Addr()})
	defer client.Close()
	other.Close()

	_, err = NewRedis(&Config{RedisClient: client})
	s.Error(err)
}

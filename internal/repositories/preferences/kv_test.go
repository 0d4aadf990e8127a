package preferences

import (
	"context"
	"testing"

	"github.com/KirkDiggler/dutch/internal/repositories/kv"
	"github.com/stretchr/testify/suite"
)

type KVRepositoryTestSuite struct {
	suite.Suite
	store kv.Store
	repo  Repository
	ctx   context.Context
}

func (s *KVRepositoryTestSuite) SetupTest() {
	s.store = kv.NewMemory()

	repo, err := NewKV(&Config{Store: s.store})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func TestKVRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(KVRepositoryTestSuite))
}

func (s *KVRepositoryTestSuite) TestDefaultWhenUnset() {
	out, err := s.repo.GetFlag(s.ctx, &GetFlagInput{Flag: FlagCommentary, Default: true})
	s.Require().NoError(err)
	s.True(out.Enabled)
	s.False(out.IsSet)
}

func (s *KVRepositoryTestSuite) TestSetAndGet() {
	err := s.repo.SetFlag(s.ctx, &SetFlagInput{ChannelID: "chan-1", Flag: FlagSound, Enabled: false})
	s.Require().NoError(err)

	raw, err := s.store.Get(s.ctx, "dutch_sound_enabled:chan-1")
	s.Require().NoError(err)
	s.Equal("false", raw)

	out, err := s.repo.GetFlag(s.ctx, &GetFlagInput{ChannelID: "chan-1", Flag: FlagSound, Default: true})
	s.Require().NoError(err)
	s.False(out.Enabled)
	s.True(out.IsSet)
}

func (s *KVRepositoryTestSuite) TestGarbageFallsBackToDefault() {
	s.Require().NoError(s.store.Set(s.ctx, string(FlagCommentary), "maybe"))

	out, err := s.repo.GetFlag(s.ctx, &GetFlagInput{Flag: FlagCommentary, Default: true})
	s.Require().NoError(err)
	s.True(out.Enabled)
	s.False(out.IsSet)
}

func (s *KVRepositoryTestSuite) TestUnknownFlag() {
	_, err := s.repo.GetFlag(s.ctx, &GetFlagInput{Flag: "dutch_confetti"})
	s.ErrorIs(err, ErrUnknownFlag)

	err = s.repo.SetFlag(s.ctx, &SetFlagInput{Flag: "dutch_confetti", Enabled: true})
	s.ErrorIs(err, ErrUnknownFlag)
}

package setup

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/dutch/internal/repositories/kv"
	kvMocks "github.com/KirkDiggler/dutch/internal/repositories/kv/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
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

func (s *KVRepositoryTestSuite) TestSaveAndGet() {
	err := s.repo.SaveSetup(s.ctx, &SaveSetupInput{ChannelID: "chan-1", Names: []string{"Alice", "Bob"}})
	s.Require().NoError(err)

	out, err := s.repo.GetSetup(s.ctx, &GetSetupInput{ChannelID: "chan-1"})
	s.Require().NoError(err)
	s.Equal([]string{"Alice", "Bob"}, out.Names)

	raw, err := s.store.Get(s.ctx, "dutch_player_setup:chan-1")
	s.Require().NoError(err)
	s.JSONEq(`["Alice","Bob"]`, raw)
}

func (s *KVRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.GetSetup(s.ctx, &GetSetupInput{ChannelID: "chan-1"})
	s.ErrorIs(err, ErrSetupNotFound)
}

func (s *KVRepositoryTestSuite) TestGetSkipsBlankNames() {
	s.Require().NoError(s.store.Set(s.ctx, PlayerSetupKey, `["Alice","  ",""," Bob "]`))

	out, err := s.repo.GetSetup(s.ctx, &GetSetupInput{})
	s.Require().NoError(err)
	s.Equal([]string{"Alice", "Bob"}, out.Names)
}

func (s *KVRepositoryTestSuite) TestGetCorruptOrEmpty() {
	s.Require().NoError(s.store.Set(s.ctx, PlayerSetupKey, `not json`))
	_, err := s.repo.GetSetup(s.ctx, &GetSetupInput{})
	s.ErrorIs(err, ErrSetupNotFound)

	s.Require().NoError(s.store.Set(s.ctx, PlayerSetupKey, `[]`))
	_, err = s.repo.GetSetup(s.ctx, &GetSetupInput{})
	s.ErrorIs(err, ErrSetupNotFound)
}

func (s *KVRepositoryTestSuite) TestClearSetup() {
	s.Require().NoError(s.repo.SaveSetup(s.ctx, &SaveSetupInput{Names: []string{"Alice", "Bob"}}))
	s.Require().NoError(s.repo.ClearSetup(s.ctx, &ClearSetupInput{}))

	_, err := s.repo.GetSetup(s.ctx, &GetSetupInput{})
	s.ErrorIs(err, ErrSetupNotFound)
}

func (s *KVRepositoryTestSuite) TestValidation() {
	s.Error(s.repo.SaveSetup(s.ctx, nil))
	s.Error(s.repo.SaveSetup(s.ctx, &SaveSetupInput{}))
	s.Error(s.repo.ClearSetup(s.ctx, nil))
}

func (s *KVRepositoryTestSuite) TestStoreErrorIsWrapped() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	store := kvMocks.NewMockStore(ctrl)
	repo, err := NewKV(&Config{Store: store})
	s.Require().NoError(err)

	storeErr := errors.New("connection refused")
	store.EXPECT().Get(gomock.Any(), PlayerSetupKey).Return("", storeErr)

	_, err = repo.GetSetup(s.ctx, &GetSetupInput{})
	s.ErrorIs(err, storeErr)
	s.NotErrorIs(err, ErrSetupNotFound)
}

package banbox

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/xreatlabs/headsteal/internal/domain/banbox"
	"github.com/xreatlabs/headsteal/internal/domain/shared"
	apperrors "github.com/xreatlabs/headsteal/internal/errors"
)

type redisRepoTestSuite struct {
	suite.Suite
	repo   Repository
	mock   redismock.ClientMock
	ctx    context.Context
	record *banbox.Record
}

func (s *redisRepoTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.repo = NewRedisRepository(&RedisRepoConfig{Client: client})
	s.ctx = context.Background()
	s.record = &banbox.Record{
		PlayerID:      "player-1",
		PlayerName:    "Alice",
		KillerID:      "player-2",
		DeathLocation: shared.Location{World: "overworld", X: 10, Y: 64, Z: -3},
		BanTimestamp:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		AutoUnbanDays: 30,
		HeadToken:     "token-1",
	}
}

func (s *redisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *redisRepoTestSuite) recordJSON() string {
	jsonData, err := json.Marshal(toData(s.record))
	s.Require().NoError(err)
	return string(jsonData)
}

func (s *redisRepoTestSuite) TestSave() {
	s.mock.ExpectSet("banbox:player-1", s.recordJSON(), 0).SetVal("OK")
	s.mock.ExpectSAdd("banbox:players", "player-1").SetVal(1)

	s.NoError(s.repo.Save(s.ctx, s.record))
}

func (s *redisRepoTestSuite) TestSave_Validation() {
	s.Error(s.repo.Save(s.ctx, nil))
	s.Error(s.repo.Save(s.ctx, &banbox.Record{}))
}

func (s *redisRepoTestSuite) TestGet() {
	s.mock.ExpectGet("banbox:player-1").SetVal(s.recordJSON())

	record, err := s.repo.Get(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(s.record, record)
}

func (s *redisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("banbox:missing").RedisNil()

	_, err := s.repo.Get(s.ctx, "missing")
	s.True(apperrors.IsNotFound(err))
}

func (s *redisRepoTestSuite) TestGet_CorruptData() {
	s.mock.ExpectGet("banbox:player-1").SetVal("not json")

	_, err := s.repo.Get(s.ctx, "player-1")
	s.Error(err)
	s.False(apperrors.IsNotFound(err))
}

func (s *redisRepoTestSuite) TestDelete() {
	s.mock.ExpectDel("banbox:player-1").SetVal(1)
	s.mock.ExpectSRem("banbox:players", "player-1").SetVal(1)

	s.NoError(s.repo.Delete(s.ctx, "player-1"))
}

func (s *redisRepoTestSuite) TestDelete_AbsentIsNotFound() {
	// DEL removing nothing means another caller already won the revival
	s.mock.ExpectDel("banbox:player-1").SetVal(0)

	err := s.repo.Delete(s.ctx, "player-1")
	s.True(apperrors.IsNotFound(err))
}

func (s *redisRepoTestSuite) TestGetAll() {
	s.mock.ExpectSMembers("banbox:players").SetVal([]string{"player-1"})
	s.mock.ExpectGet("banbox:player-1").SetVal(s.recordJSON())

	records, err := s.repo.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(s.record, records[0])
}

func (s *redisRepoTestSuite) TestGetAll_SkipsCorruptEntries() {
	s.mock.MatchExpectationsInOrder(false)
	s.mock.ExpectSMembers("banbox:players").SetVal([]string{"player-1", "player-2"})
	s.mock.ExpectGet("banbox:player-1").SetVal(s.recordJSON())
	s.mock.ExpectGet("banbox:player-2").SetVal("garbage")

	records, err := s.repo.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal("player-1", records[0].PlayerID)
}

func TestRedisRepoSuite(t *testing.T) {
	suite.Run(t, new(redisRepoTestSuite))
}

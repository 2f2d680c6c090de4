package roll

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/goldhollow/trophytable/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testRoll(id int64, player string) *models.Roll {
	return &models.Roll{
		ID: id,
		Dice: []models.Die{
			{Kind: models.DieKindLight, Value: 6, ID: fmt.Sprintf("die-%d", id)},
		},
		Outcome: models.Outcome{
			Label:    "Logras lo que quieres. Describe cómo o pídeselo al Guardián",
			Severity: models.SeverityGold,
			Sound:    models.SoundSuccess,
			RollType: models.RollTypeRisk,
		},
		PlayerName: player,
		RollType:   models.RollTypeRisk,
		Timestamp:  "12:30",
	}
}

func (s *RedisRepositoryTestSuite) TestAppendAndGetRecent() {
	ctx := context.Background()

	err := s.repo.AppendRoll(ctx, &AppendRollInput{
		SessionID: "tumba-del-rey-a1b2",
		Roll:      s.testRoll(1000, "Mirlo"),
	})
	s.Require().NoError(err)

	out, err := s.repo.GetRecent(ctx, &GetRecentInput{SessionID: "tumba-del-rey-a1b2"})
	s.Require().NoError(err)
	s.Require().Len(out.Rolls, 1)

	s.Equal(int64(1000), out.Rolls[0].ID)
	s.Equal("Mirlo", out.Rolls[0].PlayerName)
	s.Equal(models.RollTypeRisk, out.Rolls[0].RollType)
	s.Len(out.Rolls[0].Dice, 1)
	s.Equal(models.SeverityGold, out.Rolls[0].Outcome.Severity)
}

func (s *RedisRepositoryTestSuite) TestGetRecentOrdersNewestFirst() {
	ctx := context.Background()

	for _, id := range []int64{1000, 3000, 2000} {
		err := s.repo.AppendRoll(ctx, &AppendRollInput{
			SessionID: "incursion",
			Roll:      s.testRoll(id, "Mirlo"),
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.GetRecent(ctx, &GetRecentInput{SessionID: "incursion"})
	s.Require().NoError(err)
	s.Require().Len(out.Rolls, 3)

	s.Equal(int64(3000), out.Rolls[0].ID)
	s.Equal(int64(2000), out.Rolls[1].ID)
	s.Equal(int64(1000), out.Rolls[2].ID)
}

func (s *RedisRepositoryTestSuite) TestGetRecentCapsHistory() {
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		err := s.repo.AppendRoll(ctx, &AppendRollInput{
			SessionID: "incursion",
			Roll:      s.testRoll(int64(1000+i), "Mirlo"),
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.GetRecent(ctx, &GetRecentInput{SessionID: "incursion"})
	s.Require().NoError(err)
	s.Require().Len(out.Rolls, DefaultHistoryLimit)

	// The window holds exactly the 20 newest, descending.
	s.Equal(int64(1024), out.Rolls[0].ID)
	s.Equal(int64(1005), out.Rolls[len(out.Rolls)-1].ID)
}

func (s *RedisRepositoryTestSuite) TestGetRecentEmptySession() {
	out, err := s.repo.GetRecent(context.Background(), &GetRecentInput{SessionID: "vacia"})
	s.Require().NoError(err)
	s.Empty(out.Rolls)
}

func (s *RedisRepositoryTestSuite) TestPurge() {
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := s.repo.AppendRoll(ctx, &AppendRollInput{
			SessionID: "incursion",
			Roll:      s.testRoll(int64(1000+i), "Mirlo"),
		})
		s.Require().NoError(err)
	}

	err := s.repo.Purge(ctx, &PurgeInput{SessionID: "incursion"})
	s.Require().NoError(err)

	out, err := s.repo.GetRecent(ctx, &GetRecentInput{SessionID: "incursion"})
	s.Require().NoError(err)
	s.Empty(out.Rolls)
}

func (s *RedisRepositoryTestSuite) TestSubscribeReceivesOwnWrites() {
	ctx := context.Background()

	sub, err := s.repo.Subscribe(ctx, &SubscribeInput{SessionID: "incursion"})
	s.Require().NoError(err)
	defer sub.Close()

	err = s.repo.AppendRoll(ctx, &AppendRollInput{
		SessionID: "incursion",
		Roll:      s.testRoll(1000, "Mirlo"),
	})
	s.Require().NoError(err)

	select {
	case event := <-sub.Events():
		s.Equal(EventTypeRoll, event.Type)
		s.Require().NotNil(event.Roll)
		s.Equal(int64(1000), event.Roll.ID)
	case <-time.After(2 * time.Second):
		s.Fail("timed out waiting for roll event")
	}
}

func (s *RedisRepositoryTestSuite) TestSubscribeReceivesPurge() {
	ctx := context.Background()

	sub, err := s.repo.Subscribe(ctx, &SubscribeInput{SessionID: "incursion"})
	s.Require().NoError(err)
	defer sub.Close()

	err = s.repo.Purge(ctx, &PurgeInput{SessionID: "incursion"})
	s.Require().NoError(err)

	select {
	case event := <-sub.Events():
		s.Equal(EventTypePurge, event.Type)
		s.Nil(event.Roll)
	case <-time.After(2 * time.Second):
		s.Fail("timed out waiting for purge event")
	}
}

func (s *RedisRepositoryTestSuite) TestSubscribeIsSessionScoped() {
	ctx := context.Background()

	sub, err := s.repo.Subscribe(ctx, &SubscribeInput{SessionID: "otra"})
	s.Require().NoError(err)
	defer sub.Close()

	err = s.repo.AppendRoll(ctx, &AppendRollInput{
		SessionID: "incursion",
		Roll:      s.testRoll(1000, "Mirlo"),
	})
	s.Require().NoError(err)

	select {
	case event := <-sub.Events():
		s.Failf("unexpected event", "got %+v", event)
	case <-time.After(200 * time.Millisecond):
	}
}

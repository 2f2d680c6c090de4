package character

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/goldhollow/trophytable/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

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

func (s *RedisRepositoryTestSuite) TestUpsertCreatesWithDefaults() {
	char, err := s.repo.Upsert(context.Background(), &UpsertInput{
		SessionID:  "incursion",
		PlayerName: "Mirlo",
		Update: &Update{
			Occupation: strPtr("Cazadora furtiva"),
		},
	})
	s.Require().NoError(err)

	// Creation is implicit: the first write lands on the default sheet.
	s.Equal("Mirlo", char.Name)
	s.Equal(models.RuinMin, char.Ruin)
	s.Equal("Cazadora furtiva", char.Occupation)

	stored, err := s.repo.GetCharacter(context.Background(), &GetCharacterInput{
		SessionID:  "incursion",
		PlayerName: "Mirlo",
	})
	s.Require().NoError(err)
	s.Equal(char, stored)
}

func (s *RedisRepositoryTestSuite) TestUpsertMergesFields() {
	ctx := context.Background()

	_, err := s.repo.Upsert(ctx, &UpsertInput{
		SessionID:  "incursion",
		PlayerName: "Mirlo",
		Update:     &Update{Gold: intPtr(4), Drive: strPtr("Saldar la deuda")},
	})
	s.Require().NoError(err)

	char, err := s.repo.Upsert(ctx, &UpsertInput{
		SessionID:  "incursion",
		PlayerName: "Mirlo",
		Update:     &Update{Ruin: intPtr(3)},
	})
	s.Require().NoError(err)

	s.Equal(3, char.Ruin)
	s.Equal(4, char.Gold)
	s.Equal("Saldar la deuda", char.Drive)
}

func (s *RedisRepositoryTestSuite) TestUpsertClampsRuin() {
	char, err := s.repo.Upsert(context.Background(), &UpsertInput{
		SessionID:  "incursion",
		PlayerName: "Mirlo",
		Update:     &Update{Ruin: intPtr(9)},
	})
	s.Require().NoError(err)
	s.Equal(models.RuinMax, char.Ruin)

	char, err = s.repo.Upsert(context.Background(), &UpsertInput{
		SessionID:  "incursion",
		PlayerName: "Mirlo",
		Update:     &Update{Ruin: intPtr(0)},
	})
	s.Require().NoError(err)
	s.Equal(models.RuinMin, char.Ruin)
}

func (s *RedisRepositoryTestSuite) TestGetCharacterNotFound() {
	_, err := s.repo.GetCharacter(context.Background(), &GetCharacterInput{
		SessionID:  "incursion",
		PlayerName: "Nadie",
	})
	s.Require().ErrorIs(err, ErrCharacterNotFound)
}

func (s *RedisRepositoryTestSuite) TestReplaceOverwrites() {
	ctx := context.Background()

	_, err := s.repo.Upsert(ctx, &UpsertInput{
		SessionID:  "incursion",
		PlayerName: "Mirlo",
		Update:     &Update{Notes: strPtr("viejo apunte")},
	})
	s.Require().NoError(err)

	imported := &models.Character{
		Name:         "Mirlo",
		Ruin:         2,
		StartingRuin: 1,
		Gold:         7,
		Occupation:   "Ratera",
	}
	err = s.repo.Replace(ctx, &ReplaceInput{
		SessionID: "incursion",
		Character: imported,
	})
	s.Require().NoError(err)

	char, err := s.repo.GetCharacter(ctx, &GetCharacterInput{
		SessionID:  "incursion",
		PlayerName: "Mirlo",
	})
	s.Require().NoError(err)
	s.Equal(7, char.Gold)
	s.Equal("Ratera", char.Occupation)
	s.Empty(char.Notes)
}

func (s *RedisRepositoryTestSuite) TestGetParty() {
	ctx := context.Background()

	for _, name := range []string{"Mirlo", "Zarza", models.GuardianName} {
		_, err := s.repo.Upsert(ctx, &UpsertInput{
			SessionID:  "incursion",
			PlayerName: name,
			Update:     &Update{},
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.GetParty(ctx, &GetPartyInput{SessionID: "incursion"})
	s.Require().NoError(err)
	s.Len(out.Characters, 3)
	s.Contains(out.Characters, "Mirlo")
	s.Contains(out.Characters, "Zarza")
}

func (s *RedisRepositoryTestSuite) TestGetPartyEmptySession() {
	out, err := s.repo.GetParty(context.Background(), &GetPartyInput{SessionID: "vacia"})
	s.Require().NoError(err)
	s.Empty(out.Characters)
}

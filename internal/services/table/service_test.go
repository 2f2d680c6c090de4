package table

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/goldhollow/trophytable/internal/common/clock/mocks"
	uuidMocks "github.com/goldhollow/trophytable/internal/common/uuid/mocks"
	diceMocks "github.com/goldhollow/trophytable/internal/dice/mocks"
	"github.com/goldhollow/trophytable/internal/models"
	characterRepo "github.com/goldhollow/trophytable/internal/repositories/character"
	characterMocks "github.com/goldhollow/trophytable/internal/repositories/character/mocks"
	prefsRepo "github.com/goldhollow/trophytable/internal/repositories/prefs"
	prefsMocks "github.com/goldhollow/trophytable/internal/repositories/prefs/mocks"
	rollRepo "github.com/goldhollow/trophytable/internal/repositories/roll"
	rollMocks "github.com/goldhollow/trophytable/internal/repositories/roll/mocks"
	sessionRepo "github.com/goldhollow/trophytable/internal/repositories/session"
	sessionMocks "github.com/goldhollow/trophytable/internal/repositories/session/mocks"
)

type TableServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockSessionRepo   *sessionMocks.MockRepository
	mockRollRepo      *rollMocks.MockRepository
	mockCharacterRepo *characterMocks.MockRepository
	mockPrefsRepo     *prefsMocks.MockRepository
	mockRoller        *diceMocks.MockRoller
	mockClock         *clockMocks.MockClock
	mockUUID          *uuidMocks.MockUUID
	service           *service
	ctx               context.Context

	now time.Time
}

func (s *TableServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.ctrl)
	s.mockRollRepo = rollMocks.NewMockRepository(s.ctrl)
	s.mockCharacterRepo = characterMocks.NewMockRepository(s.ctrl)
	s.mockPrefsRepo = prefsMocks.NewMockRepository(s.ctrl)
	s.mockRoller = diceMocks.NewMockRoller(s.ctrl)
	s.mockClock = clockMocks.NewMockClock(s.ctrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 14, 21, 7, 0, 0, time.UTC)

	svc, err := New(&Config{
		SessionRepo:   s.mockSessionRepo,
		RollRepo:      s.mockRollRepo,
		CharacterRepo: s.mockCharacterRepo,
		PrefsRepo:     s.mockPrefsRepo,
		DiceRoller:    s.mockRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *TableServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TableServiceTestSuite) expectSession(id string) *models.Session {
	session := &models.Session{ID: id, Title: "La Incursión", Created: s.now}
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: id}).
		Return(session, nil)
	return session
}

func (s *TableServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilSessionRepo, err)
}

func (s *TableServiceTestSuite) TestCreateSession() {
	s.mockClock.EXPECT().Now().Return(s.now)
	s.mockUUID.EXPECT().NewUUID().Return("9f8a6c1e-aaaa-bbbb-cccc-000000000000")
	s.mockSessionRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			s.Equal("la-incursion-9f8a", input.Session.ID)
			s.Equal("La Incursión", input.Session.Title)
			return nil
		})
	s.mockPrefsRepo.EXPECT().
		RememberSession(s.ctx, &prefsRepo.RememberSessionInput{
			ClientToken: "tok-1",
			Session: &models.RecentSession{
				ID:    "la-incursion-9f8a",
				Title: "La Incursión",
				Date:  s.now.UnixMilli(),
			},
		}).
		Return(nil)
	s.mockPrefsRepo.EXPECT().
		SaveIdentity(s.ctx, &prefsRepo.SaveIdentityInput{
			ClientToken: "tok-1",
			SessionID:   "la-incursion-9f8a",
			Identity:    &models.Identity{Role: models.RoleGuardian},
		}).
		Return(nil)

	output, err := s.service.CreateSession(s.ctx, &CreateSessionInput{
		Title:       "  La Incursión ",
		AsGuardian:  true,
		ClientToken: "tok-1",
	})
	s.Require().NoError(err)
	s.Equal("la-incursion-9f8a", output.Session.ID)
}

func (s *TableServiceTestSuite) TestCreateSessionEmptyTitle() {
	_, err := s.service.CreateSession(s.ctx, &CreateSessionInput{Title: "   "})
	s.Equal(ErrEmptyTitle, err)
}

func (s *TableServiceTestSuite) TestJoinAsPlayer() {
	s.expectSession("bosque-1234")
	s.mockPrefsRepo.EXPECT().
		SaveIdentity(s.ctx, &prefsRepo.SaveIdentityInput{
			ClientToken: "tok-1",
			SessionID:   "bosque-1234",
			Identity:    &models.Identity{Role: models.RolePlayer, Name: "Mireille"},
		}).
		Return(nil)
	s.mockCharacterRepo.EXPECT().
		GetParty(s.ctx, &characterRepo.GetPartyInput{SessionID: "bosque-1234"}).
		Return(&characterRepo.GetPartyOutput{Characters: map[string]*models.Character{}}, nil)

	output, err := s.service.Join(s.ctx, &JoinInput{
		SessionID:   "bosque-1234",
		PlayerName:  " Mireille ",
		ClientToken: "tok-1",
	})
	s.Require().NoError(err)
	s.Equal(models.RolePlayer, output.Participant.Role)
	s.Equal("Mireille", output.Participant.Name)
}

func (s *TableServiceTestSuite) TestJoinRejectsReservedName() {
	s.expectSession("bosque-1234")

	_, err := s.service.Join(s.ctx, &JoinInput{
		SessionID:  "bosque-1234",
		PlayerName: models.GuardianName,
	})
	s.Equal(ErrReservedName, err)
}

func (s *TableServiceTestSuite) TestJoinUnknownSession() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.service.Join(s.ctx, &JoinInput{SessionID: "nadie", PlayerName: "Mireille"})
	s.Equal(ErrSessionNotFound, err)
}

func (s *TableServiceTestSuite) TestRollRisk() {
	s.expectSession("bosque-1234")
	// two light then one dark, per pool order
	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(6).Return(3),
		s.mockRoller.EXPECT().Roll(6).Return(5),
		s.mockRoller.EXPECT().Roll(6).Return(2),
	)
	s.mockUUID.EXPECT().NewUUID().Return("d1").Times(1)
	s.mockUUID.EXPECT().NewUUID().Return("d2").Times(1)
	s.mockUUID.EXPECT().NewUUID().Return("d3").Times(1)
	s.mockClock.EXPECT().Now().Return(s.now)

	var appended *models.Roll
	s.mockRollRepo.EXPECT().
		AppendRoll(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *rollRepo.AppendRollInput) error {
			s.Equal("bosque-1234", input.SessionID)
			appended = input.Roll
			return nil
		})

	output, err := s.service.Roll(s.ctx, &RollInput{
		SessionID:  "bosque-1234",
		PlayerName: "Mireille",
		RollType:   models.RollTypeRisk,
		LightCount: 2,
		DarkCount:  1,
	})
	s.Require().NoError(err)
	s.Require().NotNil(appended)
	s.Equal(appended, output.Roll)
	s.Equal(s.now.UnixMilli(), appended.ID)
	s.Equal("21:07", appended.Timestamp)
	s.False(appended.IsPush)
	s.Len(appended.Dice, 3)
	s.Equal(models.DieKindLight, appended.Dice[0].Kind)
	s.Equal(models.DieKindDark, appended.Dice[2].Kind)
	// highest face is light 5: success with complication
	s.Equal(models.SeverityPale, appended.Outcome.Severity)
	s.False(appended.Outcome.IsDarkHighest)
}

func (s *TableServiceTestSuite) TestRollHelpIgnoresCounts() {
	s.expectSession("bosque-1234")
	s.mockRoller.EXPECT().Roll(6).Return(6)
	s.mockUUID.EXPECT().NewUUID().Return("d1")
	s.mockClock.EXPECT().Now().Return(s.now)
	s.mockRollRepo.EXPECT().
		AppendRoll(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *rollRepo.AppendRollInput) error {
			s.Len(input.Roll.Dice, 1)
			s.Equal(models.DieKindLight, input.Roll.Dice[0].Kind)
			return nil
		})

	_, err := s.service.Roll(s.ctx, &RollInput{
		SessionID:  "bosque-1234",
		PlayerName: "Mireille",
		RollType:   models.RollTypeHelp,
		LightCount: 4,
		DarkCount:  3,
	})
	s.Require().NoError(err)
}

func (s *TableServiceTestSuite) TestRollEmptyPoolIsNoOp() {
	s.expectSession("bosque-1234")
	// no roller, clock or repo expectations: nothing may happen

	_, err := s.service.Roll(s.ctx, &RollInput{
		SessionID:  "bosque-1234",
		PlayerName: "Mireille",
		RollType:   models.RollTypeRisk,
		LightCount: 0,
		DarkCount:  0,
	})
	s.Equal(ErrEmptyPool, err)
}

func (s *TableServiceTestSuite) TestRollInvalidType() {
	_, err := s.service.Roll(s.ctx, &RollInput{
		SessionID:  "bosque-1234",
		PlayerName: "Mireille",
		RollType:   models.RollType("destino"),
	})
	s.Equal(ErrInvalidRollType, err)
}

func (s *TableServiceTestSuite) TestPush() {
	original := &models.Roll{
		ID: s.now.Add(-time.Minute).UnixMilli(),
		Dice: []models.Die{
			{Kind: models.DieKindLight, Value: 4, ID: "d1"},
			{Kind: models.DieKindDark, Value: 3, ID: "d2"},
		},
		PlayerName: "Mireille",
		RollType:   models.RollTypeRisk,
	}
	s.mockRollRepo.EXPECT().
		GetRecent(s.ctx, &rollRepo.GetRecentInput{SessionID: "bosque-1234", Limit: 1}).
		Return(&rollRepo.GetRecentOutput{Rolls: []*models.Roll{original}}, nil)
	s.mockRoller.EXPECT().Roll(6).Return(6)
	s.mockUUID.EXPECT().NewUUID().Return("d3")
	s.mockClock.EXPECT().Now().Return(s.now)

	var appended *models.Roll
	s.mockRollRepo.EXPECT().
		AppendRoll(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *rollRepo.AppendRollInput) error {
			appended = input.Roll
			return nil
		})

	output, err := s.service.Push(s.ctx, &PushInput{
		SessionID:  "bosque-1234",
		PlayerName: "Mireille",
	})
	s.Require().NoError(err)
	s.Equal(appended, output.Roll)

	// new record: original dice plus one dark die, reclassified
	s.True(appended.IsPush)
	s.Len(appended.Dice, 3)
	s.Equal(models.DieKindDark, appended.Dice[2].Kind)
	s.Equal(6, appended.Dice[2].Value)
	s.True(appended.Outcome.IsDarkHighest)
	s.Equal(models.SoundRuin, appended.Outcome.Sound)

	// the pushed roll must stay untouched
	s.Len(original.Dice, 2)
	s.False(original.IsPush)
}

func (s *TableServiceTestSuite) TestPushOnlyByOwner() {
	s.mockRollRepo.EXPECT().
		GetRecent(s.ctx, gomock.Any()).
		Return(&rollRepo.GetRecentOutput{Rolls: []*models.Roll{
			{PlayerName: "Otro", RollType: models.RollTypeRisk},
		}}, nil)

	_, err := s.service.Push(s.ctx, &PushInput{SessionID: "bosque-1234", PlayerName: "Mireille"})
	s.Equal(ErrNotYourRoll, err)
}

func (s *TableServiceTestSuite) TestPushHelpRejected() {
	s.mockRollRepo.EXPECT().
		GetRecent(s.ctx, gomock.Any()).
		Return(&rollRepo.GetRecentOutput{Rolls: []*models.Roll{
			{PlayerName: "Mireille", RollType: models.RollTypeHelp},
		}}, nil)

	_, err := s.service.Push(s.ctx, &PushInput{SessionID: "bosque-1234", PlayerName: "Mireille"})
	s.Equal(ErrPushNotAllowed, err)
}

func (s *TableServiceTestSuite) TestPushEmptyHistory() {
	s.mockRollRepo.EXPECT().
		GetRecent(s.ctx, gomock.Any()).
		Return(&rollRepo.GetRecentOutput{}, nil)

	_, err := s.service.Push(s.ctx, &PushInput{SessionID: "bosque-1234", PlayerName: "Mireille"})
	s.Equal(ErrNoRolls, err)
}

func (s *TableServiceTestSuite) TestPurgeRequiresConfirmation() {
	_, err := s.service.PurgeHistory(s.ctx, &PurgeHistoryInput{SessionID: "bosque-1234"})
	s.Equal(ErrPurgeNotConfirmed, err)
}

func (s *TableServiceTestSuite) TestPurge() {
	s.mockRollRepo.EXPECT().
		Purge(s.ctx, &rollRepo.PurgeInput{SessionID: "bosque-1234"}).
		Return(nil)

	_, err := s.service.PurgeHistory(s.ctx, &PurgeHistoryInput{
		SessionID: "bosque-1234",
		Confirmed: true,
	})
	s.NoError(err)
}

func (s *TableServiceTestSuite) TestImportCharacterNameMismatch() {
	_, err := s.service.ImportCharacter(s.ctx, &ImportCharacterInput{
		SessionID:  "bosque-1234",
		PlayerName: "Mireille",
		Character:  &models.Character{Name: "Otro"},
		Confirmed:  true,
	})
	s.Equal(ErrInvalidCharacter, err)
}

func (s *TableServiceTestSuite) TestImportCharacterRequiresConfirmation() {
	_, err := s.service.ImportCharacter(s.ctx, &ImportCharacterInput{
		SessionID:  "bosque-1234",
		PlayerName: "Mireille",
		Character:  &models.Character{Name: "Mireille"},
	})
	s.Equal(ErrImportNotConfirmed, err)
}

func (s *TableServiceTestSuite) TestImportCharacterClampsRuin() {
	char := models.Character{Name: "Mireille", Ruin: 11}
	s.mockCharacterRepo.EXPECT().
		Replace(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *characterRepo.ReplaceInput) error {
			s.Equal(models.RuinMax, input.Character.Ruin)
			return nil
		})

	output, err := s.service.ImportCharacter(s.ctx, &ImportCharacterInput{
		SessionID:  "bosque-1234",
		PlayerName: "Mireille",
		Character:  &char,
		Confirmed:  true,
	})
	s.Require().NoError(err)
	s.Equal(models.RuinMax, output.Character.Ruin)
	// the caller's copy stays as given
	s.Equal(11, char.Ruin)
}

func (s *TableServiceTestSuite) TestLanding() {
	s.mockRoller.EXPECT().Roll(gomock.Any()).Return(1)
	s.mockPrefsRepo.EXPECT().
		RecentSessions(s.ctx, &prefsRepo.RecentSessionsInput{ClientToken: "tok-1"}).
		Return(&prefsRepo.RecentSessionsOutput{Sessions: []*models.RecentSession{
			{ID: "bosque-1234", Title: "Bosque"},
		}}, nil)

	output, err := s.service.Landing(s.ctx, &LandingInput{ClientToken: "tok-1"})
	s.Require().NoError(err)
	s.NotEmpty(output.Tagline)
	s.Len(output.Recent, 1)
}

func (s *TableServiceTestSuite) TestLandingAnonymous() {
	s.mockRoller.EXPECT().Roll(gomock.Any()).Return(2)

	output, err := s.service.Landing(s.ctx, &LandingInput{})
	s.Require().NoError(err)
	s.NotEmpty(output.Tagline)
	s.Nil(output.Recent)
}

func TestTableServiceSuite(t *testing.T) {
	suite.Run(t, new(TableServiceTestSuite))
}

package table

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goldhollow/trophytable/internal/common/clock"
	"github.com/goldhollow/trophytable/internal/common/slug"
	commonUUID "github.com/goldhollow/trophytable/internal/common/uuid"
	"github.com/goldhollow/trophytable/internal/dice"
	"github.com/goldhollow/trophytable/internal/models"
	characterRepo "github.com/goldhollow/trophytable/internal/repositories/character"
	prefsRepo "github.com/goldhollow/trophytable/internal/repositories/prefs"
	rollRepo "github.com/goldhollow/trophytable/internal/repositories/roll"
	sessionRepo "github.com/goldhollow/trophytable/internal/repositories/session"
	"github.com/goldhollow/trophytable/internal/rules"
)

// taglines are the ambient phrases shown on the landing screen.
var taglines = []string{
	"El bosque te reclama",
	"La deuda debe pagarse",
	"No volverás igual que te fuiste",
	"El tesoro es una trampa",
	"La ruina te espera",
}

// Config holds the table service dependencies.
type Config struct {
	SessionRepo   sessionRepo.Repository
	RollRepo      rollRepo.Repository
	CharacterRepo characterRepo.Repository
	PrefsRepo     prefsRepo.Repository
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator commonUUID.UUID

	// MaxDicePerKind caps a pool's light and dark counts. Zero means the
	// default of 10.
	MaxDicePerKind int
}

// service implements the Service interface.
type service struct {
	sessionRepo    sessionRepo.Repository
	rollRepo       rollRepo.Repository
	characterRepo  characterRepo.Repository
	prefsRepo      prefsRepo.Repository
	roller         dice.Roller
	clock          clock.Clock
	uuid           commonUUID.UUID
	maxDicePerKind int
}

// New creates a table service.
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.RollRepo == nil {
		return nil, ErrNilRollRepo
	}
	if cfg.CharacterRepo == nil {
		return nil, ErrNilCharacterRepo
	}
	if cfg.PrefsRepo == nil {
		return nil, ErrNilPrefsRepo
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	maxDice := cfg.MaxDicePerKind
	if maxDice <= 0 {
		maxDice = 10
	}

	return &service{
		sessionRepo:    cfg.SessionRepo,
		rollRepo:       cfg.RollRepo,
		characterRepo:  cfg.CharacterRepo,
		prefsRepo:      cfg.PrefsRepo,
		roller:         cfg.DiceRoller,
		clock:          cfg.Clock,
		uuid:           cfg.UUIDGenerator,
		maxDicePerKind: maxDice,
	}, nil
}

// CreateSession derives a shareable slug id from the title, persists the
// session and remembers it in the creator's preferences.
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	base := slug.Make(title)
	if base == "" {
		base = "partida"
	}
	id := fmt.Sprintf("%s-%s", base, s.shortSuffix())

	now := s.clock.Now()
	session := &models.Session{
		ID:      id,
		Title:   title,
		Created: now,
	}

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		return nil, err
	}

	if input.ClientToken != "" {
		err := s.prefsRepo.RememberSession(ctx, &prefsRepo.RememberSessionInput{
			ClientToken: input.ClientToken,
			Session: &models.RecentSession{
				ID:    session.ID,
				Title: session.Title,
				Date:  now.UnixMilli(),
			},
		})
		if err != nil {
			return nil, err
		}

		identity := &models.Identity{Role: models.RoleGuardian}
		if !input.AsGuardian {
			name := strings.TrimSpace(input.CreatorName)
			if name == "" {
				return &CreateSessionOutput{Session: session}, nil
			}
			identity = &models.Identity{Role: models.RolePlayer, Name: name}
		}
		err = s.prefsRepo.SaveIdentity(ctx, &prefsRepo.SaveIdentityInput{
			ClientToken: input.ClientToken,
			SessionID:   session.ID,
			Identity:    identity,
		})
		if err != nil {
			return nil, err
		}
	}

	return &CreateSessionOutput{Session: session}, nil
}

// Landing returns a random tagline plus the client's recent sessions.
func (s *service) Landing(ctx context.Context, input *LandingInput) (*LandingOutput, error) {
	out := &LandingOutput{
		Tagline: taglines[s.roller.Roll(len(taglines))-1],
	}

	if input.ClientToken == "" {
		return out, nil
	}

	recent, err := s.prefsRepo.RecentSessions(ctx, &prefsRepo.RecentSessionsInput{
		ClientToken: input.ClientToken,
	})
	if err != nil {
		return nil, err
	}
	out.Recent = recent.Sessions
	return out, nil
}

// Prefill returns what the join screen shows before anyone commits: the
// session title, the existing characters and any remembered identity.
func (s *service) Prefill(ctx context.Context, input *PrefillInput) (*PrefillOutput, error) {
	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	party, err := s.characterRepo.GetParty(ctx, &characterRepo.GetPartyInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	out := &PrefillOutput{
		Session:    session,
		Characters: party.Characters,
	}

	if input.ClientToken != "" {
		identity, err := s.prefsRepo.GetIdentity(ctx, &prefsRepo.GetIdentityInput{
			ClientToken: input.ClientToken,
			SessionID:   input.SessionID,
		})
		if err != nil && !errors.Is(err, prefsRepo.ErrIdentityNotFound) {
			return nil, err
		}
		out.Identity = identity
	}

	return out, nil
}

// Join asserts an identity in a session. Identity is trusted as given;
// the only rules are that a name is present and that players cannot claim
// the Guardián's reserved name.
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	var participant models.Participant
	if input.AsGuardian {
		participant = models.NewGuardian()
	} else {
		name := strings.TrimSpace(input.PlayerName)
		if name == "" {
			return nil, ErrEmptyPlayerName
		}
		if name == models.GuardianName {
			return nil, ErrReservedName
		}
		participant = models.NewPlayer(name)
	}

	if input.ClientToken != "" {
		identity := &models.Identity{Role: participant.Role}
		if participant.Role == models.RolePlayer {
			identity.Name = participant.Name
		}
		err := s.prefsRepo.SaveIdentity(ctx, &prefsRepo.SaveIdentityInput{
			ClientToken: input.ClientToken,
			SessionID:   input.SessionID,
			Identity:    identity,
		})
		if err != nil {
			return nil, err
		}
	}

	party, err := s.characterRepo.GetParty(ctx, &characterRepo.GetPartyInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	return &JoinOutput{
		Session:     session,
		Participant: participant,
		Party:       party.Characters,
	}, nil
}

// Roll runs the whole resolution flow: assemble the pool for the type, ask
// the roller for faces, tag and classify, persist one immutable record.
// An empty pool is a no-op: nothing is rolled, written or announced.
func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if _, ok := models.ParseRollType(string(input.RollType)); !ok {
		return nil, ErrInvalidRollType
	}

	player := strings.TrimSpace(input.PlayerName)
	if player == "" {
		return nil, ErrEmptyPlayerName
	}

	if _, err := s.getSession(ctx, input.SessionID); err != nil {
		return nil, err
	}

	requests := rules.AssemblePool(input.RollType, s.clampCount(input.LightCount), s.clampCount(input.DarkCount))
	if len(requests) == 0 {
		return nil, ErrEmptyPool
	}

	rolled := make([]models.Die, 0, len(requests))
	for _, req := range requests {
		rolled = append(rolled, models.Die{
			Kind:  req.Kind,
			Value: s.roller.Roll(req.Sides),
			ID:    s.uuid.NewUUID(),
		})
	}

	record := s.newRoll(player, input.RollType, rolled, false)
	err := s.rollRepo.AppendRoll(ctx, &rollRepo.AppendRollInput{
		SessionID: input.SessionID,
		Roll:      record,
	})
	if err != nil {
		return nil, err
	}

	return &RollOutput{Roll: record}, nil
}

// Push layers one fresh dark die on top of the most recent roll's dice and
// reclassifies the combined set as a new record. The original record stays
// untouched; only its owner may push, and help rolls cannot be pushed.
func (s *service) Push(ctx context.Context, input *PushInput) (*PushOutput, error) {
	player := strings.TrimSpace(input.PlayerName)
	if player == "" {
		return nil, ErrEmptyPlayerName
	}

	recent, err := s.rollRepo.GetRecent(ctx, &rollRepo.GetRecentInput{
		SessionID: input.SessionID,
		Limit:     1,
	})
	if err != nil {
		return nil, err
	}
	if len(recent.Rolls) == 0 {
		return nil, ErrNoRolls
	}

	last := recent.Rolls[0]
	if last.PlayerName != player {
		return nil, ErrNotYourRoll
	}
	if last.RollType == models.RollTypeHelp {
		return nil, ErrPushNotAllowed
	}

	combined := make([]models.Die, 0, len(last.Dice)+1)
	combined = append(combined, last.Dice...)
	combined = append(combined, models.Die{
		Kind:  models.DieKindDark,
		Value: s.roller.Roll(6),
		ID:    s.uuid.NewUUID(),
	})

	record := s.newRoll(player, last.RollType, combined, true)
	err = s.rollRepo.AppendRoll(ctx, &rollRepo.AppendRollInput{
		SessionID: input.SessionID,
		Roll:      record,
	})
	if err != nil {
		return nil, err
	}

	return &PushOutput{Roll: record}, nil
}

// History returns the live history window, newest first.
func (s *service) History(ctx context.Context, input *HistoryInput) (*HistoryOutput, error) {
	recent, err := s.rollRepo.GetRecent(ctx, &rollRepo.GetRecentInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}
	return &HistoryOutput{Rolls: recent.Rolls}, nil
}

// PurgeHistory clears the roll log. There is no undo, so the caller must
// confirm explicitly.
func (s *service) PurgeHistory(ctx context.Context, input *PurgeHistoryInput) (*PurgeHistoryOutput, error) {
	if !input.Confirmed {
		return nil, ErrPurgeNotConfirmed
	}

	err := s.rollRepo.Purge(ctx, &rollRepo.PurgeInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}
	return &PurgeHistoryOutput{}, nil
}

// WatchRolls opens the live roll feed for a session.
func (s *service) WatchRolls(ctx context.Context, input *WatchRollsInput) (*rollRepo.Subscription, error) {
	if _, err := s.getSession(ctx, input.SessionID); err != nil {
		return nil, err
	}
	return s.rollRepo.Subscribe(ctx, &rollRepo.SubscribeInput{SessionID: input.SessionID})
}

// UpdateCharacter applies one partial write. The sheet is created with
// defaults on its first write; there is no explicit creation step.
func (s *service) UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error) {
	player := strings.TrimSpace(input.PlayerName)
	if player == "" {
		return nil, ErrEmptyPlayerName
	}
	if input.Update == nil {
		return nil, ErrInvalidCharacter
	}

	char, err := s.characterRepo.Upsert(ctx, &characterRepo.UpsertInput{
		SessionID:  input.SessionID,
		PlayerName: player,
		Update:     input.Update,
	})
	if err != nil {
		return nil, err
	}
	return &UpdateCharacterOutput{Character: char}, nil
}

// ImportCharacter overwrites a sheet with an externally edited payload. The
// payload must name the same character and the caller must confirm the
// overwrite; a rejected import writes nothing.
func (s *service) ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error) {
	player := strings.TrimSpace(input.PlayerName)
	if player == "" {
		return nil, ErrEmptyPlayerName
	}
	if input.Character == nil || input.Character.Name != player {
		return nil, ErrInvalidCharacter
	}
	if !input.Confirmed {
		return nil, ErrImportNotConfirmed
	}

	char := *input.Character
	char.ClampRuin()
	err := s.characterRepo.Replace(ctx, &characterRepo.ReplaceInput{
		SessionID: input.SessionID,
		Character: &char,
	})
	if err != nil {
		return nil, err
	}
	return &ImportCharacterOutput{Character: &char}, nil
}

// GetCharacter reads one sheet.
func (s *service) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	char, err := s.characterRepo.GetCharacter(ctx, &characterRepo.GetCharacterInput{
		SessionID:  input.SessionID,
		PlayerName: input.PlayerName,
	})
	if err != nil {
		return nil, err
	}
	return &GetCharacterOutput{Character: char}, nil
}

// GetParty reads the whole roster.
func (s *service) GetParty(ctx context.Context, input *GetPartyInput) (*GetPartyOutput, error) {
	party, err := s.characterRepo.GetParty(ctx, &characterRepo.GetPartyInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}
	return &GetPartyOutput{Characters: party.Characters}, nil
}

func (s *service) getSession(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *service) newRoll(player string, rollType models.RollType, rolled []models.Die, isPush bool) *models.Roll {
	now := s.clock.Now()
	return &models.Roll{
		ID:         now.UnixMilli(),
		Dice:       rolled,
		Outcome:    rules.Classify(rolled, rollType),
		PlayerName: player,
		RollType:   rollType,
		IsPush:     isPush,
		Timestamp:  now.Format("15:04"),
	}
}

func (s *service) clampCount(count int) int {
	if count < 0 {
		return 0
	}
	if count > s.maxDicePerKind {
		return s.maxDicePerKind
	}
	return count
}

func (s *service) shortSuffix() string {
	raw := strings.ReplaceAll(s.uuid.NewUUID(), "-", "")
	if len(raw) > 4 {
		raw = raw[:4]
	}
	return raw
}

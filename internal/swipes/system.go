// Package swipes runs the card swipe game: it deals scenario cards, asks the
// chat model to judge a player's rizz/risk choices, and records the result.
package swipes

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rizzorrisk/rizz/internal/prompts"
	"github.com/rizzorrisk/rizz/internal/responses"
	"github.com/rizzorrisk/rizz/pkg/auth"
)

// Judger sends a judgment prompt to the chat model.
type Judger interface {
	Judge(ctx context.Context, prompt string) (string, error)
}

// System defines the swipe game operations.
type System interface {
	Handler() *Handler
	// Deal returns n random cards from the scenario deck.
	Deal(n int) ([]Card, error)
	// Judge asks the model for a judgment on swipes. On generator failure it
	// returns UnavailableJudgment with an error wrapping ErrGenerator. With a
	// session, successful judgments are appended to the user's log.
	Judge(ctx context.Context, session *auth.Session, swipes []responses.Swipe) (Judgment, error)
}

type system struct {
	judger Judger
	store  responses.System
	logger *slog.Logger

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// New creates the swipe game system.
func New(judger Judger, store responses.System, logger *slog.Logger) System {
	return &system{
		judger: judger,
		store:  store,
		logger: logger.With("system", "swipes"),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:    time.Now,
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Deal(n int) ([]Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Deal(n, s.rng)
}

func (s *system) Judge(ctx context.Context, session *auth.Session, swipes []responses.Swipe) (Judgment, error) {
	if err := validate(swipes); err != nil {
		return Judgment{}, err
	}

	prompt, err := prompts.Judge(swipes)
	if err != nil {
		return UnavailableJudgment, fmt.Errorf("%w: %w", ErrGenerator, err)
	}

	text, err := s.judger.Judge(ctx, prompt)
	if err != nil {
		return UnavailableJudgment, fmt.Errorf("%w: %w", ErrGenerator, err)
	}

	judgment, parsed := ParseJudgment(text)
	if !parsed {
		s.logger.Warn("model judgment unusable, using canned judgment", "response", text)
	}

	s.persist(ctx, session, judgment, swipes)
	return judgment, nil
}

// persist logs and swallows store failures so the judgment is still returned.
func (s *system) persist(ctx context.Context, session *auth.Session, j Judgment, swipes []responses.Swipe) {
	if session == nil {
		return
	}

	rec := j.Record(swipes)
	rec.ID = uuid.NewString()
	rec.Timestamp = responses.Timestamp(s.now())

	owner := responses.Owner{UserID: session.UserID, Email: session.Email}
	if _, err := s.store.Append(ctx, owner, rec); err != nil {
		s.logger.Error("failed to store swipe judgment", "user_id", session.UserID, "error", err)
	}
}

func validate(swipes []responses.Swipe) error {
	if len(swipes) == 0 {
		return ErrInvalidSwipes
	}
	for _, sw := range swipes {
		if !sw.Choice.Valid() {
			return ErrInvalidSwipes
		}
	}
	return nil
}

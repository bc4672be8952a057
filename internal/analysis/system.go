package analysis

import (
	"bytes"
	"context"
	"log/slog"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rizzorrisk/rizz/internal/emotions"
	"github.com/rizzorrisk/rizz/internal/responses"
	"github.com/rizzorrisk/rizz/internal/verdicts"
	"github.com/rizzorrisk/rizz/pkg/auth"
	"github.com/rizzorrisk/rizz/pkg/storage"
)

// Verdicter produces the chat model's verdict for a classified scenario.
type Verdicter interface {
	Verdict(ctx context.Context, scenario string, scores []emotions.Score, tone emotions.Tone) verdicts.Outcome
}

// System defines the analysis operations.
type System interface {
	Handler(maxUploadSize int64) *Handler
	// Analyze runs the classifier and the verdict generator over sub.
	// The only error is ErrScenarioRequired; upstream failures are carried
	// in the Result. With a session, successful results are appended to the
	// user's log and any attachment is stored beside it.
	Analyze(ctx context.Context, session *auth.Session, sub Submission) (Result, error)
}

type system struct {
	classifier emotions.Classifier
	verdicter  Verdicter
	store      responses.System
	blobs      storage.System
	logger     *slog.Logger
	now        func() time.Time
}

// New creates the analysis system.
func New(
	classifier emotions.Classifier,
	verdicter Verdicter,
	store responses.System,
	blobs storage.System,
	logger *slog.Logger,
) System {
	return &system{
		classifier: classifier,
		verdicter:  verdicter,
		store:      store,
		blobs:      blobs,
		logger:     logger.With("system", "analysis"),
		now:        time.Now,
	}
}

func (s *system) Handler(maxUploadSize int64) *Handler {
	return NewHandler(s, s.logger, maxUploadSize)
}

func (s *system) Analyze(ctx context.Context, session *auth.Session, sub Submission) (Result, error) {
	if strings.TrimSpace(sub.Scenario) == "" {
		return Result{}, ErrScenarioRequired
	}

	var (
		g   errgroup.Group
		key string
	)
	if s.storeAttachment(session, sub.Attachment) {
		g.Go(func() error {
			key = s.upload(ctx, session, sub.Attachment)
			return nil
		})
	}

	detection := s.classifier.Detect(ctx, sub.Scenario)
	tone := emotions.Derive(detection.Scores)
	outcome := s.verdicter.Verdict(ctx, sub.Scenario, detection.Scores, tone)

	g.Wait()

	result := Result{
		Emotions:       detection.Scores,
		Classification: tone,
		Message:        outcome.Message,
		Err:            outcome.Err,
		Fallback:       outcome.Fallback,
		AttachmentKey:  key,
	}

	if result.OK() {
		s.persist(ctx, session, sub.Scenario, result)
	}

	return result, nil
}

func (s *system) storeAttachment(session *auth.Session, a *Attachment) bool {
	return session != nil && a != nil && len(a.Data) > 0 && s.blobs.Enabled()
}

// upload stores a and returns its key, or "" when the upload failed.
func (s *system) upload(ctx context.Context, session *auth.Session, a *Attachment) string {
	key := s.blobs.Key(session.UserID, uuid.NewString()+extension(a))
	if err := s.blobs.Upload(ctx, key, bytes.NewReader(a.Data), a.ContentType); err != nil {
		s.logger.Error("failed to store attachment", "user_id", session.UserID, "error", err)
		return ""
	}
	return key
}

func (s *system) persist(ctx context.Context, session *auth.Session, scenario string, result Result) {
	if session == nil {
		return
	}

	rec := result.Record(scenario)
	rec.ID = uuid.NewString()
	rec.Timestamp = responses.Timestamp(s.now())

	owner := responses.Owner{UserID: session.UserID, Email: session.Email}
	if _, err := s.store.Append(ctx, owner, rec); err != nil {
		s.logger.Error("failed to store verdict", "user_id", session.UserID, "error", err)
	}
}

func extension(a *Attachment) string {
	if ext := path.Ext(a.Filename); ext != "" {
		return strings.ToLower(ext)
	}
	if exts, err := mime.ExtensionsByType(a.ContentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}

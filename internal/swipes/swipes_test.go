package swipes_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rizzorrisk/rizz/internal/responses"
	"github.com/rizzorrisk/rizz/internal/swipes"
	"github.com/rizzorrisk/rizz/pkg/auth"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeJudger struct {
	text   string
	err    error
	prompt string
}

func (f *fakeJudger) Judge(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, f.err
}

type memStore struct {
	mu      sync.Mutex
	owners  []responses.Owner
	records []responses.Record
	err     error
}

func (m *memStore) Append(_ context.Context, owner responses.Owner, rec responses.Record) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	m.owners = append(m.owners, owner)
	m.records = append(m.records, rec)
	return len(m.records), nil
}

func (m *memStore) List(context.Context, string) ([]responses.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records, nil
}

var hand = []responses.Swipe{
	{CardID: 0, Scenario: "They remembered your coffee order", Choice: responses.ChoiceRizz},
	{CardID: 1, Scenario: "They liked a 2 month old story", Choice: responses.ChoiceRisk},
	{CardID: 2, Scenario: "They said we should hang out", Choice: responses.ChoiceRisk},
}

func TestParseJudgment(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   swipes.Judgment
		parsed bool
	}{
		{
			name:   "plain json",
			text:   `{"judgment":"Solid instincts.","deluluRating":3}`,
			want:   swipes.Judgment{Judgment: "Solid instincts.", DeluluRating: 3},
			parsed: true,
		},
		{
			name:   "fenced json",
			text:   "```json\n{\"judgment\":\"Down bad.\",\"deluluRating\":8.5}\n```",
			want:   swipes.Judgment{Judgment: "Down bad.", DeluluRating: 8.5},
			parsed: true,
		},
		{
			name:   "out of range rating passes through",
			text:   `{"judgment":"Off the charts.","deluluRating":14}`,
			want:   swipes.Judgment{Judgment: "Off the charts.", DeluluRating: 14},
			parsed: true,
		},
		{name: "prose", text: "You seem pretty delulu!", want: swipes.UnparsableJudgment},
		{name: "missing rating", text: `{"judgment":"hmm"}`, want: swipes.IncompleteJudgment},
		{name: "string rating", text: `{"judgment":"hmm","deluluRating":"7"}`, want: swipes.IncompleteJudgment},
		{name: "empty judgment", text: `{"judgment":"","deluluRating":4}`, want: swipes.IncompleteJudgment},
		{name: "null", text: `null`, want: swipes.IncompleteJudgment},
		{name: "array", text: `[1,2]`, want: swipes.IncompleteJudgment},
		{name: "json string", text: `"just text"`, want: swipes.IncompleteJudgment},
		{name: "number", text: `42`, want: swipes.IncompleteJudgment},
		{name: "fenced array", text: "```json\n[]\n```", want: swipes.IncompleteJudgment},
		{name: "truncated object", text: `{"judgment":"hm`, want: swipes.UnparsableJudgment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, parsed := swipes.ParseJudgment(tt.text)
			if parsed != tt.parsed {
				t.Errorf("parsed = %v, want %v", parsed, tt.parsed)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("judgment mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJudgmentRecord(t *testing.T) {
	rec := swipes.Judgment{Judgment: "Chaotic.", DeluluRating: 7.6}.Record(hand)

	if rec.Scenario != "Swipe Game: 3 cards (1 Rizz, 2 Risk)" {
		t.Errorf("scenario = %q", rec.Scenario)
	}
	if rec.Classification != "🎮 Delulu Rating: 8/10" {
		t.Errorf("classification = %q", rec.Classification)
	}
	if rec.Message != "Chaotic." {
		t.Errorf("message = %q", rec.Message)
	}
	if len(rec.Emotions) != 1 || rec.Emotions[0].Label != "swipe-analysis" || rec.Emotions[0].Score != 0.8 {
		t.Errorf("emotions = %+v", rec.Emotions)
	}
	if rec.GameData == nil || rec.GameData.DeluluRating != 8 {
		t.Fatalf("game data = %+v", rec.GameData)
	}
	if diff := cmp.Diff(hand, rec.GameData.SwipeResults); diff != "" {
		t.Errorf("swipe results mismatch (-want +got):\n%s", diff)
	}
}

func TestJudgmentRecordClampsRating(t *testing.T) {
	rec := swipes.Judgment{Judgment: "x", DeluluRating: 42}.Record(hand)
	if rec.GameData.DeluluRating != 10 {
		t.Errorf("rating = %d, want 10", rec.GameData.DeluluRating)
	}
}

func TestDeal(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	cards, err := swipes.Deal(swipes.DefaultHand, rng)
	if err != nil {
		t.Fatalf("deal: %v", err)
	}
	if len(cards) != swipes.DefaultHand {
		t.Fatalf("got %d cards, want %d", len(cards), swipes.DefaultHand)
	}

	seen := map[string]bool{}
	for i, c := range cards {
		if c.ID != i {
			t.Errorf("card %d id = %d", i, c.ID)
		}
		if seen[c.Scenario] {
			t.Errorf("duplicate scenario %q", c.Scenario)
		}
		seen[c.Scenario] = true
	}
}

func TestDealInvalidCount(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{0, -1, swipes.DeckSize() + 1} {
		if _, err := swipes.Deal(n, rng); !errors.Is(err, swipes.ErrInvalidCount) {
			t.Errorf("deal(%d) error = %v, want ErrInvalidCount", n, err)
		}
	}
}

func TestJudgePersistsWithSession(t *testing.T) {
	judger := &fakeJudger{text: "```json\n{\"judgment\":\"Be careful.\",\"deluluRating\":6.2}\n```"}
	store := &memStore{}
	sys := swipes.New(judger, store, discard())

	session := &auth.Session{UserID: "user-1", Email: "u@example.com"}
	got, err := sys.Judge(context.Background(), session, hand)
	if err != nil {
		t.Fatalf("judge: %v", err)
	}

	want := swipes.Judgment{Judgment: "Be careful.", DeluluRating: 6.2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("judgment mismatch (-want +got):\n%s", diff)
	}

	if !strings.Contains(judger.prompt, `Card 1: "They remembered your coffee order"`) {
		t.Errorf("prompt missing card line:\n%s", judger.prompt)
	}

	if len(store.records) != 1 {
		t.Fatalf("stored %d records, want 1", len(store.records))
	}
	rec := store.records[0]
	if rec.ID == "" || rec.Timestamp == "" {
		t.Errorf("record missing id or timestamp: %+v", rec)
	}
	if rec.GameData.DeluluRating != 6 {
		t.Errorf("stored rating = %d, want 6", rec.GameData.DeluluRating)
	}
	if store.owners[0].Email != "u@example.com" {
		t.Errorf("owner = %+v", store.owners[0])
	}
}

func TestJudgeAnonymousDoesNotPersist(t *testing.T) {
	store := &memStore{}
	sys := swipes.New(&fakeJudger{text: "not json"}, store, discard())

	got, err := sys.Judge(context.Background(), nil, hand)
	if err != nil {
		t.Fatalf("judge: %v", err)
	}
	if got != swipes.UnparsableJudgment {
		t.Errorf("judgment = %+v, want unparsable fallback", got)
	}
	if len(store.records) != 0 {
		t.Errorf("anonymous judge stored %d records", len(store.records))
	}
}

func TestJudgeStoreFailureStillReturnsJudgment(t *testing.T) {
	store := &memStore{err: responses.ErrUnavailable}
	sys := swipes.New(&fakeJudger{text: `{"judgment":"ok","deluluRating":2}`}, store, discard())

	got, err := sys.Judge(context.Background(), &auth.Session{UserID: "u"}, hand)
	if err != nil {
		t.Fatalf("judge: %v", err)
	}
	if got.Judgment != "ok" {
		t.Errorf("judgment = %+v", got)
	}
}

func TestJudgeGeneratorFailure(t *testing.T) {
	store := &memStore{}
	sys := swipes.New(&fakeJudger{err: errors.New("boom")}, store, discard())

	got, err := sys.Judge(context.Background(), &auth.Session{UserID: "u"}, hand)
	if !errors.Is(err, swipes.ErrGenerator) {
		t.Fatalf("error = %v, want ErrGenerator", err)
	}
	if got != swipes.UnavailableJudgment {
		t.Errorf("judgment = %+v", got)
	}
	if len(store.records) != 0 {
		t.Error("failed judgment should not be stored")
	}
}

func TestJudgeRejectsInvalidSwipes(t *testing.T) {
	sys := swipes.New(&fakeJudger{}, &memStore{}, discard())

	tests := map[string][]responses.Swipe{
		"empty":      {},
		"bad choice": {{CardID: 0, Scenario: "x", Choice: "maybe"}},
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := sys.Judge(context.Background(), nil, in); !errors.Is(err, swipes.ErrInvalidSwipes) {
				t.Errorf("error = %v, want ErrInvalidSwipes", err)
			}
		})
	}
}

func serve(t *testing.T, sys swipes.System, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	group := sys.Handler().Routes()
	for _, rt := range group.Routes {
		mux.HandleFunc(rt.Method+" "+group.Prefix+rt.Pattern, rt.Handler)
	}

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandlerJudge(t *testing.T) {
	sys := swipes.New(&fakeJudger{text: `{"judgment":"Keep dreaming.","deluluRating":9}`}, &memStore{}, discard())

	body, _ := json.Marshal(map[string]any{"swipeResults": hand})
	rec := serve(t, sys, "POST", "/flags", string(body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var got map[string]any
	json.NewDecoder(rec.Body).Decode(&got)
	want := map[string]any{"judgment": "Keep dreaming.", "deluluRating": 9.0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestHandlerJudgeValidation(t *testing.T) {
	sys := swipes.New(&fakeJudger{}, &memStore{}, discard())

	tests := map[string]string{
		"missing":    `{}`,
		"not array":  `{"swipeResults":"lots"}`,
		"empty":      `{"swipeResults":[]}`,
		"bad choice": `{"swipeResults":[{"cardId":0,"scenario":"x","choice":"both"}]}`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			rec := serve(t, sys, "POST", "/flags", body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "Invalid swipeResults data") {
				t.Errorf("body = %s", rec.Body)
			}
		})
	}
}

func TestHandlerJudgeGeneratorFailure(t *testing.T) {
	sys := swipes.New(&fakeJudger{err: errors.New("down")}, &memStore{}, discard())

	body, _ := json.Marshal(map[string]any{"swipeResults": hand})
	rec := serve(t, sys, "POST", "/flags", string(body))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var got map[string]any
	json.NewDecoder(rec.Body).Decode(&got)
	want := map[string]any{
		"error":        "Failed to get AI response",
		"judgment":     swipes.UnavailableJudgment.Judgment,
		"deluluRating": 5.0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}

func TestHandlerCards(t *testing.T) {
	sys := swipes.New(&fakeJudger{}, &memStore{}, discard())

	rec := serve(t, sys, "GET", "/flags/cards", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var cards []swipes.Card
	json.NewDecoder(rec.Body).Decode(&cards)
	if len(cards) != swipes.DefaultHand {
		t.Errorf("got %d cards, want %d", len(cards), swipes.DefaultHand)
	}

	rec = serve(t, sys, "GET", "/flags/cards?count=2", "")
	json.NewDecoder(rec.Body).Decode(&cards)
	if len(cards) != 2 {
		t.Errorf("got %d cards, want 2", len(cards))
	}

	for _, q := range []string{"0", "99", "abc"} {
		rec = serve(t, sys, "GET", "/flags/cards?count="+q, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("count=%s status = %d, want 400", q, rec.Code)
		}
	}
}

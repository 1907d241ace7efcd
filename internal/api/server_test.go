package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroljus/neurohus/internal/config"
	"github.com/neuroljus/neurohus/internal/domain"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	conf := &config.AppConfig{
		API: config.APIConfig{
			Port:               "0",
			BaseURL:            "localhost",
			Environment:        "test",
			AllowedCORSDomains: []string{"http://localhost:3000"},
		},
		Gin:  config.GinConfig{Mode: gin.TestMode},
		Seed: config.SeedConfig{Enabled: true},
	}

	s, err := NewServer(conf, func() time.Time { return testNow })
	require.NoError(t, err)

	return s
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func errMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	return decode[map[string]string](t, rec)["fel"]
}

func TestRootEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	root := decode[map[string]string](t, rec)
	assert.Equal(t, "Välkommen till Neuroljus Neurohus! 🏠💛", root["message"])
	assert.Equal(t, "1.0.0", root["version"])
	assert.Equal(t, "running", root["status"])

	rec = doJSON(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[map[string]string](t, rec)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "Neuroljus Neurohus API är igång och redo att hjälpa! 💪", health["message"])

	rec = doJSON(t, s, http.MethodGet, "/api/verksamheter", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	providers := decode[struct {
		Providers []domain.Provider `json:"verksamheter"`
	}](t, rec).Providers
	require.Len(t, providers, 2)
	assert.Equal(t, "Solgården", providers[0].Name)
	assert.Equal(t, "Göteborg", providers[1].Municipality)
	assert.Equal(t, 4.8, providers[1].Rating)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/awards", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestVoting(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/nominations/nominering-1/votes", map[string]string{"user_id": "u1", "reason": "Trygg miljö"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	vote := decode[struct {
		VoteID     string            `json:"vote_id"`
		Nomination domain.Nomination `json:"nomination"`
	}](t, rec)
	assert.NotEmpty(t, vote.VoteID)
	assert.Equal(t, 1, vote.Nomination.VoteCount)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/nominations/nominering-1/votes", map[string]string{"user_id": "u1"})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Du har redan röstat på denna nominering", errMessage(t, rec))

	rec = doJSON(t, s, http.MethodPost, "/api/v1/nominations/nominering-2/votes", map[string]string{"user_id": "u1"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, s, http.MethodPost, "/api/v1/nominations/nominering-2/votes", map[string]string{"user_id": "u2"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/nominations/finns-inte/votes", map[string]string{"user_id": "u1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/nominations/nominering-1/votes", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/awards/"+url.PathEscape("årets-boende")+"/results", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	results := decode[domain.AwardResults](t, rec)
	assert.Equal(t, 3, results.TotalVotes)
	require.Len(t, results.Results, 2)
	assert.Equal(t, "nominering-2", results.Results[0].Nomination.ID)
	assert.InDelta(t, 66.7, results.Results[0].Percent, 1e-9)
	assert.InDelta(t, 33.3, results.Results[1].Percent, 1e-9)
	assert.True(t, results.VotingOpen)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/awards/finns-inte/results", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/nominations?award_id=finns-inte", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Utmärkelsen hittades inte", errMessage(t, rec))

	rec = doJSON(t, s, http.MethodGet, "/api/v1/users/u1/votes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.UserVote](t, rec), 2)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/awards/"+url.PathEscape("årets-boende")+"/winners", nil)
	assert.Equal(t, http.StatusConflict, rec.Code, "voting is still open")
}

func TestNominationOutsideWindow(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/awards", map[string]any{
		"name":         "Förra årets pris",
		"category":     "Boende",
		"year":         2023,
		"voting_start": testNow.AddDate(0, -2, 0),
		"voting_end":   testNow.AddDate(0, -1, 0),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	award := decode[domain.Award](t, rec)

	nomination := map[string]string{
		"award_id":                award.ID,
		"type":                    "organization",
		"nominee_organization_id": "verksamhet-vindrosen",
		"justification":           "Fantastiskt bemötande varje dag.",
		"nominated_by":            "u1",
	}
	rec = doJSON(t, s, http.MethodPost, "/api/v1/nominations", nomination)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Röstningsperioden är inte öppen", errMessage(t, rec))

	nomination["award_id"] = "finns-inte"
	rec = doJSON(t, s, http.MethodPost, "/api/v1/nominations", nomination)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	nomination["award_id"] = "brukarens-röst"
	nomination["type"] = "person"
	rec = doJSON(t, s, http.MethodPost, "/api/v1/nominations", nomination)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Exakt en nominerad som matchar typen krävs", errMessage(t, rec))

	rec = doJSON(t, s, http.MethodPost, "/api/v1/awards", map[string]any{
		"name":         "Baklänges",
		"category":     "Boende",
		"year":         2024,
		"voting_start": testNow,
		"voting_end":   testNow.Add(-time.Hour),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAwardsGraphQL(t *testing.T) {
	s := newTestServer(t)

	type gqlResponse struct {
		Data struct {
			Awards []struct {
				ID         string `json:"id"`
				VotingOpen bool   `json:"voting_open"`
			} `json:"awards"`
			Vote struct {
				Nomination struct {
					VoteCount int `json:"vote_count"`
				} `json:"nomination"`
			} `json:"vote"`
			Results struct {
				TotalVotes int `json:"total_votes"`
			} `json:"results"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}

	rec := doJSON(t, s, http.MethodPost, "/api/v1/awards/graphql", map[string]string{
		"query": `mutation { vote(nomination_id: "nominering-3", user_id: "u1") { vote_id nomination { vote_count } } }`,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[gqlResponse](t, rec)
	require.Empty(t, res.Errors)
	assert.Equal(t, 1, res.Data.Vote.Nomination.VoteCount)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/awards/graphql", map[string]string{
		"query": `{ awards { id voting_open } results(award_id: "årets-assistent") { total_votes } }`,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	res = decode[gqlResponse](t, rec)
	require.Empty(t, res.Errors)
	require.Len(t, res.Data.Awards, 3)
	assert.True(t, res.Data.Awards[0].VotingOpen)
	assert.Equal(t, 1, res.Data.Results.TotalVotes)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/awards/graphql", map[string]string{
		"query": `mutation { vote(nomination_id: "nominering-3", user_id: "u1") { vote_id } }`,
	})
	res = decode[gqlResponse](t, rec)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0].Message, "already voted")
}

func TestAcademyFlow(t *testing.T) {
	s := newTestServer(t)
	const course = "/api/v1/academy/courses/kommunikation-och-lugn-kontakt"
	user := map[string]string{"user_id": "u1"}

	rec := doJSON(t, s, http.MethodGet, course, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "correct_answer")

	rec = doJSON(t, s, http.MethodPost, course+"/modules/0/complete", user)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Kursen är inte påbörjad", errMessage(t, rec))

	rec = doJSON(t, s, http.MethodPost, course+"/start", user)
	require.Equal(t, http.StatusOK, rec.Code)

	for i := 0; i < 5; i++ {
		rec = doJSON(t, s, http.MethodPost, fmt.Sprintf("%s/modules/%d/complete", course, i), user)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	progress := decode[domain.CourseProgress](t, rec)
	assert.Equal(t, domain.ProgressReadyForQuiz, progress.Status)

	rec = doJSON(t, s, http.MethodPost, course+"/modules/x/complete", user)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = doJSON(t, s, http.MethodPost, course+"/modules/9/complete", user)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodPost, course+"/quiz", map[string]any{"user_id": "u1", "answers": []int{0, 1, 1, 1, 0}, "name": "Anna Larsson"})
	require.Equal(t, http.StatusOK, rec.Code)
	quiz := decode[domain.QuizResult](t, rec)
	assert.InDelta(t, 100.0, quiz.ScorePercent, 1e-9)
	require.NotNil(t, quiz.Certificate)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/academy/certifikat/u1/kommunikation-och-lugn-kontakt", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, quiz.Certificate.ID, decode[domain.Certificate](t, rec).ID)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/academy/certificates/"+quiz.Certificate.ID+"/verify", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	verification := decode[domain.CertificateVerification](t, rec)
	assert.True(t, verification.Valid)
	assert.Equal(t, "Anna Larsson", verification.Recipient)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/academy/certificates/XX-1/verify", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Ogiltigt certifikat-ID", errMessage(t, rec))

	rec = doJSON(t, s, http.MethodGet, "/api/v1/academy/certificates/statistics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[domain.CertificateStatistics](t, rec).Total)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/academy/certificates/templates", map[string]any{"title": "Eget", "background_color": "blå"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/academy/courses/finns-inte", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Kursen hittades inte", errMessage(t, rec))
}

func TestCommunityEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/community/threads", map[string]string{
		"category_id": "finns-inte", "author_id": "u1", "title": "Hej alla", "content": "Text",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Kategorin hittades inte", errMessage(t, rec))

	rec = doJSON(t, s, http.MethodPost, "/api/v1/community/threads", map[string]string{
		"category_id": "boende", "author_id": "u1", "title": "Hej alla", "content": "Text",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	thread := decode[domain.Thread](t, rec)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/community/moderate", map[string]any{
		"content_type": "thread", "content_id": thread.ID, "approved": true, "close": true,
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/community/threads/"+thread.ID+"/replies", map[string]string{"author_id": "u2", "content": "Svar"})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Tråden är stängd", errMessage(t, rec))

	rec = doJSON(t, s, http.MethodPost, "/api/v1/community/moderate", map[string]any{"content_type": "bild", "content_id": thread.ID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/community/threads?category_id=boende&page=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/community/threads?category_id=boende", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[domain.ThreadPage](t, rec).Pagination.Total)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/community/threads?category_id=boende&page=4611686018427387904&per_page=4", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[domain.ThreadPage](t, rec).Threads)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/community/circles", map[string]any{
		"name": "Föräldrar", "creator_id": "u1", "members": []string{"u2"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	circle := decode[domain.Circle](t, rec)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/community/circles/"+circle.ID+"/members", map[string]string{"user_id": "u2"})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Användaren är redan medlem", errMessage(t, rec))

	rec = doJSON(t, s, http.MethodDelete, "/api/v1/community/circles/"+circle.ID+"/members/u1", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, s, http.MethodDelete, "/api/v1/community/circles/"+circle.ID+"/members/u2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/community/users/u2/circles", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[[]domain.Circle](t, rec))
}

func TestCommunityLive(t *testing.T) {
	s := newTestServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go s.Hub.Run(ctx)

	srv := httptest.NewServer(s.Router)
	t.Cleanup(srv.Close)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/community/threads", map[string]string{
		"category_id": "familj", "author_id": "u1", "title": "Sömnproblem", "content": "Tips?",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	thread := decode[domain.Thread](t, rec)

	resp, err := http.Get(srv.URL + "/api/v1/community/threads/finns-inte/live")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/community/threads/" + thread.ID + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return s.Hub.Subscribers(thread.ID) == 1 }, time.Second, 10*time.Millisecond)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/community/threads/"+thread.ID+"/replies", map[string]string{"author_id": "u2", "content": "Vi använder tyngdtäcke"})
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev domain.LiveEvent
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, domain.LiveReply, ev.Type)
	require.NotNil(t, ev.Reply)
	assert.Equal(t, "Vi använder tyngdtäcke", ev.Reply.Content)

	require.NoError(t, conn.WriteJSON(domain.LiveMessage{AuthorID: "u3", Content: "Tack för tipset"}))
	var types []domain.LiveEventType
	for i := 0; i < 2; i++ {
		require.NoError(t, conn.ReadJSON(&ev))
		types = append(types, ev.Type)
	}
	assert.ElementsMatch(t, []domain.LiveEventType{domain.LiveReply, domain.LiveConfirmation}, types)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("inte json")))
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, domain.LiveError, ev.Type)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/community/threads/"+thread.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decode[domain.ThreadWithReplies](t, rec).Thread.ReplyCount)

	cancel()
	_, _, err = conn.ReadMessage()
	assert.Error(t, err, "the hub closes subscriptions on shutdown")
}

func TestDocsEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/docs/guides?q="+url.QueryEscape("överklag"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Guide](t, rec), 2)

	path := "/api/v1/docs/guides/" + url.PathEscape("lss-ansökan-sv")
	rec = doJSON(t, s, http.MethodPatch, path, map[string]string{"title": "Ansök om LSS"})
	require.Equal(t, http.StatusOK, rec.Code)
	guide := decode[domain.Guide](t, rec)
	assert.Equal(t, "Ansök om LSS", guide.Title)
	assert.Equal(t, "Ansökan", guide.Category)

	rec = doJSON(t, s, http.MethodPatch, path, map[string]string{"title": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/docs/guides/finns-inte", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/docs/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Ansökan", "Rättigheter", "Överklagan"}, decode[[]string](t, rec))
}

func TestLabEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/lab/datasets/dataset-2/download", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	download := decode[domain.DatasetDownload](t, rec)
	assert.Equal(t, 90, download.Dataset.Downloads)
	assert.Equal(t, "/lab/datasets/dataset-2/download", download.DownloadURL)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/lab/datasets/finns-inte/download", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/lab/research/search", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/lab/research/search?q=Perception", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[domain.ResearchSearch](t, rec).Hits)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/lab/research", map[string]any{"title": "Studie", "category": "Teknologi", "impact_score": 12})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAIEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/ai/moderate/text", map[string]string{"text": "Du är en idiot", "role": "familj"})
	require.Equal(t, http.StatusOK, rec.Code)
	moderation := decode[domain.ModerationResult](t, rec)
	assert.False(t, moderation.Approved)
	assert.Equal(t, "Du är en person", moderation.ImprovedText)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/ai/moderate/text", map[string]string{"text": "Hej", "role": "chef"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/ai/improve", map[string]string{"text": "Du är en idiot"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Du är en person", decode[map[string]string](t, rec)["improved"])

	rec = doJSON(t, s, http.MethodPost, "/api/v1/ai/trends", map[string]any{"items": []domain.TrendItem{}})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Ingen data att analysera", errMessage(t, rec))

	rec = doJSON(t, s, http.MethodPost, "/api/v1/ai/recommendations", map[string]any{
		"user":      domain.UserProfile{Municipality: "Stockholm"},
		"providers": []domain.ProviderProfile{{ProviderID: "a", Municipality: "Malmö"}, {ProviderID: "b", Municipality: "Stockholm"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	recs := decode[[]domain.Recommendation](t, rec)
	require.Len(t, recs, 2)
	assert.Equal(t, "b", recs[0].ProviderID)

	rec = doJSON(t, s, http.MethodPost, "/api/v1/ai/insights/monthly", domain.MonthlyMetrics{NewUsers: 25})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2024-05", decode[domain.MonthlyReport](t, rec).Month)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	doJSON(t, s, http.MethodGet, "/health", nil)

	rec := doJSON(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `neurohus_http_requests_total{method="GET",route="/health",status="200"}`)
}

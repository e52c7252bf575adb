package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"pathpilot/internal/adapter/gemini"
	"pathpilot/internal/config"
	"pathpilot/internal/domain"
	"pathpilot/internal/dto"
	"pathpilot/internal/fallback"
	"pathpilot/internal/handler"
	"pathpilot/internal/router"
	"pathpilot/internal/service"
	"pathpilot/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory DocumentStore with the same filter and sort
// semantics as the real backends.
type memStore struct {
	mu   sync.Mutex
	docs map[string][]domain.Document
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string][]domain.Document)}
}

func (s *memStore) Insert(ctx context.Context, collection string, doc domain.Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := util.NewULID()
	stored := domain.Document{"_id": id}
	for k, v := range doc {
		stored[k] = v
	}
	s.docs[collection] = append(s.docs[collection], stored)
	return id, nil
}

func (s *memStore) Find(ctx context.Context, collection string, filter domain.Document, opts domain.FindOptions) ([]domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Document{}
	for _, d := range s.docs[collection] {
		match := true
		for k, v := range filter {
			if fmt.Sprint(d[k]) != fmt.Sprint(v) {
				match = false
			}
		}
		if match {
			out = append(out, d)
		}
	}
	for _, f := range opts.Sort {
		field, desc := f.Field, f.Descending
		sort.SliceStable(out, func(i, j int) bool {
			a, _ := out[i][field].(time.Time)
			b, _ := out[j][field].(time.Time)
			if desc {
				return a.After(b)
			}
			return a.Before(b)
		})
	}
	if opts.Limit > 0 && int64(len(out)) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (s *memStore) Close(ctx context.Context) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 3000, ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second, BodyLimit: 1 << 20},
		CORS:   config.CORSConfig{AllowOrigins: "*"},
	}
}

func newApp(model domain.ModelClient, store domain.DocumentStore) *fiber.App {
	return router.New(testConfig(), router.Handlers{
		Career: handler.NewCareerHandler(service.NewAdvisorService(model, fallback.NewSelector())),
		Record: handler.NewRecordHandler(service.NewRecordService(store)),
	})
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decodeEnvelope(t *testing.T, body []byte, v interface{}) {
	t.Helper()
	var env domain.Envelope
	require.NoError(t, json.Unmarshal(body, &env))
	require.NoError(t, env.DecodeText(v))
}

func quotaServer(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHealth(t *testing.T) {
	status, body := do(t, newApp(gemini.NewClient("", "m", "", nil), newMemStore()), "GET", "/", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", string(body))
}

func TestTrending_AlwaysOK(t *testing.T) {
	closed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	closed.Close()

	clients := map[string]domain.ModelClient{
		"missing credential": gemini.NewClient("http://127.0.0.1:1", "m", "", nil),
		"network failure":    gemini.NewClient(closed.URL, "m", "key", nil),
		"quota exhaustion":   gemini.NewClient(quotaServer(t).URL, "m", "key", nil),
	}
	for name, client := range clients {
		t.Run(name, func(t *testing.T) {
			status, body := do(t, newApp(client, newMemStore()), "POST", "/trending", `{"count":5}`)
			assert.Equal(t, http.StatusOK, status)

			var careers []domain.Career
			decodeEnvelope(t, body, &careers)
			assert.NotEmpty(t, careers)
			for _, c := range careers {
				assert.NotEmpty(t, c.Title)
			}
		})
	}
}

func TestModelEndpoints_MissingCredentialIs500(t *testing.T) {
	app := newApp(gemini.NewClient("http://127.0.0.1:1", "m", "", nil), newMemStore())
	for _, path := range []string{"/recommend", "/enrich", "/quiz", "/careers-by-category", "/career-recommendations"} {
		t.Run(path, func(t *testing.T) {
			status, body := do(t, app, "POST", path, `{}`)
			assert.Equal(t, http.StatusInternalServerError, status)

			var errResp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &errResp))
			assert.Contains(t, errResp.Error, "GEMINI_API_KEY")
		})
	}
}

func TestModelEndpoints_QuotaFallbackSchemas(t *testing.T) {
	app := newApp(gemini.NewClient(quotaServer(t).URL, "m", "key", nil), newMemStore())

	t.Run("quiz with zero questions", func(t *testing.T) {
		status, body := do(t, app, "POST", "/quiz", `{"numQuestions":0}`)
		assert.Equal(t, http.StatusOK, status)
		var quiz domain.Quiz
		decodeEnvelope(t, body, &quiz)
		assert.NotEmpty(t, quiz.ID)
		assert.Empty(t, quiz.Questions)
	})

	t.Run("quiz truncates to the request", func(t *testing.T) {
		status, body := do(t, app, "POST", "/quiz", `{"numQuestions":3}`)
		assert.Equal(t, http.StatusOK, status)
		var quiz domain.Quiz
		decodeEnvelope(t, body, &quiz)
		require.Len(t, quiz.Questions, 3)
		assert.Equal(t, fallback.QuizQuestions()[:3], quiz.Questions)
		for _, q := range quiz.Questions {
			assert.True(t, q.HasValidAnswer())
		}
	})

	t.Run("recommend", func(t *testing.T) {
		status, body := do(t, app, "POST", "/recommend", `{"preferences":{"remote":true}}`)
		assert.Equal(t, http.StatusOK, status)
		var list domain.RecommendationList
		decodeEnvelope(t, body, &list)
		assert.NotEmpty(t, list.Recommendations)
	})

	t.Run("career recommendations", func(t *testing.T) {
		status, body := do(t, app, "POST", "/career-recommendations", `{"answers":["a","c"],"limit":2}`)
		assert.Equal(t, http.StatusOK, status)
		var list domain.RecommendationList
		decodeEnvelope(t, body, &list)
		assert.Len(t, list.Recommendations, 2)
	})

	t.Run("careers by category", func(t *testing.T) {
		status, body := do(t, app, "POST", "/careers-by-category", `{"category":"Design"}`)
		assert.Equal(t, http.StatusOK, status)
		var careers []domain.Career
		decodeEnvelope(t, body, &careers)
		require.NotEmpty(t, careers)
		assert.Equal(t, "Design", careers[0].Category)
	})

	t.Run("enrich", func(t *testing.T) {
		status, body := do(t, app, "POST", "/enrich", `{"titles":["Data Scientist"]}`)
		assert.Equal(t, http.StatusOK, status)
		var byTitle map[string]domain.Career
		decodeEnvelope(t, body, &byTitle)
		assert.Equal(t, "Data Scientist", byTitle["Data Scientist"].Title)
	})
}

// The live model's text is forwarded without schema checks, even when it
// does not parse as the requested entity.
func TestModelEndpoints_LiveTextIsNotValidated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"not json at all"}]}}]}`))
	}))
	defer srv.Close()

	status, body := do(t, newApp(gemini.NewClient(srv.URL, "m", "key", nil), newMemStore()), "POST", "/quiz", `{}`)
	assert.Equal(t, http.StatusOK, status)

	var env domain.Envelope
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Equal(t, "not json at all", env.Text())
}

func TestQuizResults_RoundTripNewestFirst(t *testing.T) {
	app := newApp(gemini.NewClient("", "m", "", nil), newMemStore())

	for i, body := range []string{
		`{"userId":"u1","score":1}`,
		`{"userId":"u2","score":9}`,
		`{"userId":"u1","score":2}`,
	} {
		status, resp := do(t, app, "POST", "/quiz-results", body)
		require.Equal(t, http.StatusOK, status, "insert %d", i)
		var out dto.InsertResponse
		require.NoError(t, json.Unmarshal(resp, &out))
		assert.NotEmpty(t, out.InsertedID)
		time.Sleep(2 * time.Millisecond)
	}

	status, body := do(t, app, "GET", "/quiz-results/u1", "")
	assert.Equal(t, http.StatusOK, status)

	var results []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &results))
	require.Len(t, results, 2)
	assert.Equal(t, 2.0, results[0]["score"])
	assert.Equal(t, 1.0, results[1]["score"])
	for _, r := range results {
		assert.Equal(t, "u1", r["userId"])
		assert.NotEmpty(t, r["createdAt"])
	}
}

func TestCareers_DistinctInsertedIDs(t *testing.T) {
	app := newApp(gemini.NewClient("", "m", "", nil), newMemStore())
	career := `{"title":"Nurse","description":"Cares for patients","category":"Healthcare","requiredSkills":["Empathy"],"averageSalary":77000}`

	ids := map[string]bool{}
	for i := 0; i < 3; i++ {
		status, body := do(t, app, "POST", "/careers", career)
		require.Equal(t, http.StatusOK, status)
		var out dto.InsertResponse
		require.NoError(t, json.Unmarshal(body, &out))
		assert.False(t, ids[out.InsertedID], "id %s reused", out.InsertedID)
		ids[out.InsertedID] = true
	}

	status, body := do(t, app, "GET", "/careers", "")
	assert.Equal(t, http.StatusOK, status)
	var careers []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &careers))
	assert.Len(t, careers, 3)
}

func TestMetricsEndpoint(t *testing.T) {
	app := newApp(gemini.NewClient("", "m", "", nil), newMemStore())
	do(t, app, "GET", "/", "")

	status, body := do(t, app, "GET", "/metrics", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "pathpilot_http_requests_total")
}

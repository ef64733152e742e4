package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"director-agent/internal/agent"
	"director-agent/internal/director"
	"director-agent/internal/model"
	"director-agent/internal/router"
	"director-agent/pkg/log"
)

type mockUseCase struct {
	out    director.RouteTaskOutput
	err    error
	debug  director.DebugOutput
	got    director.RouteTaskInput
	called bool
}

func (m *mockUseCase) RouteTask(ctx context.Context, input director.RouteTaskInput) (director.RouteTaskOutput, error) {
	m.got = input
	m.called = true
	return m.out, m.err
}

func (m *mockUseCase) Debug(ctx context.Context) director.DebugOutput {
	return m.debug
}

func newTestEngine(uc director.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, New(log.NewNop(), uc))
	return r
}

func postRouteTask(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/route-task", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouteTask_OK(t *testing.T) {
	uc := &mockUseCase{out: director.RouteTaskOutput{
		Agent:    model.LabelCalendar,
		Response: agent.Result{LLMReasoning: "You have two events."},
	}}
	w := postRouteTask(newTestEngine(uc), `{"userQuery":"What is on my calendar?"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"agent":"calendar","response":{"llmReasoning":"You have two events."}}`, w.Body.String())
	assert.Equal(t, "What is on my calendar?", uc.got.UserQuery)
}

func TestRouteTask_AgentErrorResult(t *testing.T) {
	uc := &mockUseCase{out: director.RouteTaskOutput{
		Agent:    model.LabelTouring,
		Response: agent.Result{Error: "An error occurred: timeout"},
	}}
	w := postRouteTask(newTestEngine(uc), `{"userQuery":"q"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"agent":"touring","response":{"error":"An error occurred: timeout"}}`, w.Body.String())
}

func TestRouteTask_EmptyQueryAllowed(t *testing.T) {
	uc := &mockUseCase{out: director.RouteTaskOutput{Agent: model.LabelAudience, Response: agent.Result{LLMReasoning: "ok"}}}
	w := postRouteTask(newTestEngine(uc), `{}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", uc.got.UserQuery)
}

func TestRouteTask_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			"invalid classifier reply",
			&router.InvalidReplyError{Reply: "weather"},
			http.StatusBadRequest,
			`{"error":"Invalid agent response: weather. Expected one of: calendar, financial, audience, touring."}`,
		},
		{
			"capability missing",
			router.ErrCapabilityMissing,
			http.StatusInternalServerError,
			`{"error":"AI binding is not configured correctly."}`,
		},
		{
			"agent not found",
			&agent.NotFoundError{Label: "weather"},
			http.StatusInternalServerError,
			`{"error":"Agent with ID \"weather\" not found."}`,
		},
		{
			"upstream failure",
			errors.New("upstream unavailable"),
			http.StatusInternalServerError,
			`{"error":"upstream unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postRouteTask(newTestEngine(&mockUseCase{err: tt.err}), `{"userQuery":"q"}`)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRouteTask_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"truncated", `{"userQuery":`},
		{"not json", `{not json`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := postRouteTask(newTestEngine(uc), tt.body)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Contains(t, w.Body.String(), `"error":`)
			assert.NotContains(t, w.Body.String(), "Invalid agent response")
			assert.False(t, uc.called)
		})
	}
}

func TestDebug(t *testing.T) {
	uc := &mockUseCase{debug: director.DebugOutput{AvailableBindings: []string{"AI", "ollama"}, AI: "AI binding exists"}}
	r := newTestEngine(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"availableBindings":["AI","ollama"],"AI":"AI binding exists"}`, w.Body.String())
}

func TestDebug_NoBindings(t *testing.T) {
	r := newTestEngine(&mockUseCase{debug: director.DebugOutput{AI: "AI binding is missing"}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug", nil))

	assert.JSONEq(t, `{"availableBindings":[],"AI":"AI binding is missing"}`, w.Body.String())
}

func TestIndex(t *testing.T) {
	r := newTestEngine(&mockUseCase{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "<textarea")
	assert.Contains(t, w.Body.String(), "/route-task")
	assert.Contains(t, w.Body.String(), "userQuery")
}

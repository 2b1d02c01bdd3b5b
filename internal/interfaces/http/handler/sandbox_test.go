package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-ai-api/internal/application/sandbox"
	"recipe-ai-api/internal/domain/entity"
	"recipe-ai-api/pkg/errors"
)

type recordingLogRepo struct {
	entries []*entity.InvocationLog
}

func (r *recordingLogRepo) Append(_ context.Context, log *entity.InvocationLog) error {
	r.entries = append(r.entries, log)
	return nil
}

func (r *recordingLogRepo) List(context.Context, int, int) ([]*entity.InvocationLog, error) {
	return r.entries, nil
}

func newSandboxTestRouter(invoker *stubInvoker, logs *recordingLogRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := sandbox.NewService(invoker, logs)
	h := NewSandboxHandler(svc)

	r := gin.New()
	r.POST("/sandbox", h.Invoke)
	r.GET("/sandbox/logs", h.Logs)
	return r
}

func TestSandboxHandlerRequiresModel(t *testing.T) {
	r := newSandboxTestRouter(&stubInvoker{text: "hello"}, &recordingLogRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sandbox", strings.NewReader("prompt"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSandboxHandlerRequiresPrompt(t *testing.T) {
	r := newSandboxTestRouter(&stubInvoker{text: "hello"}, &recordingLogRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sandbox?model=claude-3", strings.NewReader(""))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSandboxHandlerSuccess(t *testing.T) {
	logs := &recordingLogRepo{}
	r := newSandboxTestRouter(&stubInvoker{text: "a short answer"}, logs)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sandbox?model=claude-3", strings.NewReader("say something short"))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a short answer", resp["response"])
	assert.Equal(t, float64(100), resp["inputTokens"])
	assert.Equal(t, float64(50), resp["outputTokens"])
	assert.Equal(t, float64(150), resp["totalTokens"])
	assert.Equal(t, 0.00075, resp["totalCost"])

	require.Len(t, logs.entries, 1)
	assert.Equal(t, "say something short", logs.entries[0].Prompt)
}

func TestSandboxHandlerUnknownModel(t *testing.T) {
	invoker := &stubInvoker{err: errors.New(errors.CodeModelNotSupported, "model not supported")}
	r := newSandboxTestRouter(invoker, &recordingLogRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sandbox?model=nope", strings.NewReader("prompt"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSandboxLogsRequiresLimit(t *testing.T) {
	r := newSandboxTestRouter(&stubInvoker{text: "x"}, &recordingLogRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sandbox/logs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSandboxLogsReturnsEntries(t *testing.T) {
	logs := &recordingLogRepo{entries: []*entity.InvocationLog{
		{ID: "log-1", ProviderModel: "gpt-4o-2024-08-06", Prompt: "p", Response: "r"},
	}}
	r := newSandboxTestRouter(&stubInvoker{text: "x"}, logs)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/sandbox/logs?limit=10", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp["count"])
}

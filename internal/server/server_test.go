package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockExporter records export requests
type mockExporter struct {
	mu    sync.Mutex
	calls []types.Template
	langs []types.Language
	err   error
	busy  bool
}

func (m *mockExporter) Export(_ context.Context, _ types.ResumeData, tmpl types.Template, lang types.Language) (*export.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, tmpl)
	m.langs = append(m.langs, lang)
	if m.err != nil {
		return nil, m.err
	}
	return &export.Result{Template: tmpl, FileName: tmpl.FileName(), PDF: []byte("%PDF-1.4 test")}, nil
}

func (m *mockExporter) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.busy
}

type testServer struct {
	*Server
	handler  http.Handler
	backend  *storage.MemoryStorage
	exporter *mockExporter
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	backend := storage.NewMemoryStorage()
	st := store.New(backend, store.Options{Delay: time.Hour, Logger: logging.Discard()})
	exp := &mockExporter{}
	s := New(Config{Port: 0, Language: types.LanguageEnglish}, st, exp, logging.Discard())
	t.Cleanup(func() {
		s.Close()
		_ = st.Close(context.Background())
	})
	return &testServer{Server: s, handler: s.Handler(), backend: backend, exporter: exp}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func decodeDoc(t *testing.T, w *httptest.ResponseRecorder) types.ResumeData {
	t.Helper()
	var doc types.ResumeData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc), w.Body.String())
	return doc
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["error"]
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGetResume_Blank(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodGet, "/resume", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, types.Blank(), decodeDoc(t, w))
}

func TestReplaceResume(t *testing.T) {
	ts := newTestServer(t)
	doc := types.Blank()
	doc.PersonalInfo.Name = "Sara"
	doc.Skills = []types.Skill{{ID: "s1", Name: "Go", Level: 80}}

	w := ts.do(t, http.MethodPut, "/resume", doc)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, doc, decodeDoc(t, w))
	assert.Equal(t, doc, ts.store.Snapshot())

	w = ts.do(t, http.MethodPut, "/resume", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSection(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPut, "/resume/sections/projects", []types.Project{{ID: "p1", Name: "CLI"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CLI", decodeDoc(t, w).Projects[0].Name)

	w = ts.do(t, http.MethodPut, "/resume/sections/summary", "\"Hello\"")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello", ts.store.Snapshot().Summary)

	w = ts.do(t, http.MethodPut, "/resume/sections/hobbies", []string{"chess"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPut, "/resume/sections/skills", `"not a list"`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetPersonalField(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPatch, "/resume/personal-info", FieldRequest{Field: "email", Value: "a@b.c"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a@b.c", decodeDoc(t, w).PersonalInfo.Email)

	w = ts.do(t, http.MethodPatch, "/resume/personal-info", FieldRequest{Field: "shoeSize", Value: "42"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "unknown field")

	w = ts.do(t, http.MethodPatch, "/resume/personal-info", FieldRequest{Value: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetSummary(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodPatch, "/resume/summary", ValueRequest{Value: "Builds things"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Builds things", decodeDoc(t, w).Summary)
	assert.True(t, ts.store.Pending(), "edits schedule an autosave")
}

func TestListLifecycle(t *testing.T) {
	ts := newTestServer(t)

	for i := 0; i < 3; i++ {
		w := ts.do(t, http.MethodPost, "/resume/lists/skills", nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	doc := ts.store.Snapshot()
	require.Len(t, doc.Skills, 3)
	assert.Equal(t, 50, doc.Skills[0].Level)
	ids := []string{doc.Skills[0].ID, doc.Skills[1].ID, doc.Skills[2].ID}

	w := ts.do(t, http.MethodPatch, "/resume/lists/skills/1", FieldRequest{Field: "level", Value: "150"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 100, decodeDoc(t, w).Skills[1].Level)

	w = ts.do(t, http.MethodPatch, "/resume/lists/skills/1", FieldRequest{Field: "level", Value: "lots"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 100, ts.store.Snapshot().Skills[1].Level)

	w = ts.do(t, http.MethodDelete, "/resume/lists/skills/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	remaining := decodeDoc(t, w).Skills
	require.Len(t, remaining, 2)
	assert.Equal(t, []string{ids[0], ids[2]}, []string{remaining[0].ID, remaining[1].ID})
}

func TestListErrors(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/resume/lists/hobbies", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodDelete, "/resume/lists/projects/0", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = ts.do(t, http.MethodDelete, "/resume/lists/projects/first", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLinksList(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodPost, "/resume/lists/links", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Portfolio", decodeDoc(t, w).PersonalInfo.Links[0].Label)

	w = ts.do(t, http.MethodPatch, "/resume/lists/links/0", FieldRequest{Field: "url", Value: "https://me.dev"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://me.dev", decodeDoc(t, w).PersonalInfo.Links[0].URL)
}

func avatarRequest(t *testing.T, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("avatar", "me.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/resume/avatar", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadAvatar(t *testing.T) {
	ts := newTestServer(t)

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 4, 4))))

	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, avatarRequest(t, img.Bytes()))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(decodeDoc(t, w).PersonalInfo.Avatar, "data:image/png;base64,"))
}

func TestUploadAvatar_RejectsNonImage(t *testing.T) {
	ts := newTestServer(t)

	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, avatarRequest(t, []byte("just some text")))
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	assert.Empty(t, ts.store.Snapshot().PersonalInfo.Avatar)
}

func TestSaveLoadReset(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/resume/load", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	ts.do(t, http.MethodPatch, "/resume/summary", ValueRequest{Value: "persist me"})
	w = ts.do(t, http.MethodPost, "/resume/save", nil)
	require.Equal(t, http.StatusOK, w.Code)

	raw, err := ts.backend.Get(context.Background(), store.DefaultKey)
	require.NoError(t, err)
	assert.Contains(t, raw, "persist me")

	ts.do(t, http.MethodPatch, "/resume/summary", ValueRequest{Value: "unsaved"})
	w = ts.do(t, http.MethodPost, "/resume/load", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "persist me", decodeDoc(t, w).Summary)

	w = ts.do(t, http.MethodPost, "/resume/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, types.Blank(), decodeDoc(t, w))

	w = ts.do(t, http.MethodPost, "/resume/load", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoad_Unusable(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, ts.backend.Set(context.Background(), store.DefaultKey, `{"skills": 7}`))

	w := ts.do(t, http.MethodPost, "/resume/load", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, types.Blank(), ts.store.Snapshot())
}

func TestPreview(t *testing.T) {
	ts := newTestServer(t)
	ts.do(t, http.MethodPatch, "/resume/personal-info", FieldRequest{Field: "name", Value: "Sara"})
	ts.do(t, http.MethodPost, "/resume/lists/projects", nil)
	ts.do(t, http.MethodPatch, "/resume/lists/projects/0", FieldRequest{Field: "name", Value: "kvstore"})

	w := ts.do(t, http.MethodGet, "/preview?template=ats&lang=fa", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	dir, _ := doc.Find("html").Attr("dir")
	assert.Equal(t, "rtl", dir)
	assert.Equal(t, 1, doc.Find(".resume-ats").Length())
	assert.Equal(t, "kvstore", doc.Find(".project-item .item-title").Text())
}

func TestPreview_Defaults(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/preview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "en", lang)
	assert.Equal(t, 1, doc.Find(".resume-visual").Length())

	req := httptest.NewRequest(http.MethodGet, "/preview", nil)
	req.Header.Set("Accept-Language", "fa-IR,fa;q=0.9")
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	doc, err = goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	lang, _ = doc.Find("html").Attr("lang")
	assert.Equal(t, "fa", lang)
}

func TestPreview_BadParams(t *testing.T) {
	ts := newTestServer(t)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/preview?template=latex", nil).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/preview?lang=de", nil).Code)
}

func TestExport(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/export?template=ats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="resume-ats.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.4 test", w.Body.String())
	assert.Equal(t, []types.Template{types.TemplateATS}, ts.exporter.calls)
	assert.Equal(t, []types.Language{types.LanguageEnglish}, ts.exporter.langs)
}

func TestExport_Busy(t *testing.T) {
	ts := newTestServer(t)
	ts.exporter.err = export.ErrExportInProgress

	w := ts.do(t, http.MethodPost, "/export", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestExport_Failure(t *testing.T) {
	ts := newTestServer(t)
	ts.exporter.err = &export.ExportError{Template: types.TemplateVisual, Stage: export.StagePrint, Cause: errors.New("chrome crashed")}

	w := ts.do(t, http.MethodPost, "/export?template=visual", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, errorMessage(t, w), "chrome crashed")
}

func TestExportStatus(t *testing.T) {
	ts := newTestServer(t)
	ts.exporter.busy = true

	w := ts.do(t, http.MethodGet, "/export/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"busy":true}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)
	w := ts.do(t, http.MethodOptions, "/resume", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestExport_RateLimited(t *testing.T) {
	backend := storage.NewMemoryStorage()
	st := store.New(backend, store.Options{Delay: time.Hour, Logger: logging.Discard()})
	t.Cleanup(func() { _ = st.Close(context.Background()) })
	exp := &mockExporter{}
	s := New(Config{RateLimit: ratelimit.Config{
		Enabled: true,
		Rules:   []ratelimit.Rule{{Method: "POST", Path: "/export", Limit: 1, Window: time.Hour}},
	}}, st, exp, logging.Discard())
	t.Cleanup(s.Close)
	handler := s.Handler()

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/export?template=ats", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	first := post()
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))

	second := post()
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
	assert.Len(t, exp.calls, 1)

	// other routes are not limited
	req := httptest.NewRequest(http.MethodGet, "/resume", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClose_StopsLimiterCleanup(t *testing.T) {
	backend := storage.NewMemoryStorage()
	st := store.New(backend, store.Options{Delay: time.Hour, Logger: logging.Discard()})
	t.Cleanup(func() { _ = st.Close(context.Background()) })
	s := New(Config{RateLimit: ratelimit.DefaultConfig(6)}, st, &mockExporter{}, logging.Discard())

	s.Close()
	s.Close()
	assert.True(t, s.limiter.Stopped())
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	backend := storage.NewMemoryStorage()
	st := store.New(backend, store.Options{Delay: time.Hour, Logger: logging.Discard()})
	s := New(Config{Port: 0}, st, &mockExporter{}, logging.Discard())
	s.httpServer.Addr = "127.0.0.1:0"

	_, err := st.Apply(func(d types.ResumeData) (types.ResumeData, error) {
		d.Summary = "flushed on shutdown"
		return d, nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	raw, err := backend.Get(context.Background(), store.DefaultKey)
	require.NoError(t, err)
	assert.Contains(t, raw, "flushed on shutdown")
}

package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leandrodaf/lilymidi/internal/command"
	"github.com/leandrodaf/lilymidi/internal/logger"
	"github.com/leandrodaf/lilymidi/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) (*httptest.Server, *session.Session) {
	t.Helper()
	log := logger.NewNop()
	s, err := session.New(session.WithOutput(io.Discard), session.WithLogger(log))
	require.NoError(t, err)

	srv := httptest.NewServer(NewRouter(s, command.NewHandler(s, log, io.Discard), log))
	t.Cleanup(srv.Close)
	return srv, s
}

func TestPostCommands(t *testing.T) {
	srv, s := newServer(t)

	resp, err := http.Post(srv.URL+"/commands", "text/plain", strings.NewReader("key=dM mode=chord"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "dM", s.Snapshot().Key)
	assert.Equal(t, "chord", s.Snapshot().Mode)
}

func TestPostCommands_List(t *testing.T) {
	srv, _ := newServer(t)

	resp, err := http.Post(srv.URL+"/commands", "text/plain", strings.NewReader("list=accidentals"))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, ":: sharps (s, Sharps)\n:: flats (f, Flats)\n", string(body))
}

func TestPostCommands_Errors(t *testing.T) {
	srv, s := newServer(t)

	resp, err := http.Post(srv.URL+"/commands", "text/plain", strings.NewReader("key=hM language=english foo=bar"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Detail, 2)
	// the valid entry is applied anyway
	assert.Equal(t, "english", s.Snapshot().Language)
	assert.Equal(t, "cM", s.Snapshot().Key)
}

func TestGetParameters(t *testing.T) {
	srv, s := newServer(t)
	require.NoError(t, s.SetAlteration(1, "des"))

	resp, err := http.Get(srv.URL + "/parameters")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	var snap session.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, s.ID(), snap.Session)
	assert.Equal(t, "cM", snap.Key)
	assert.Equal(t, map[uint8]string{1: "des"}, snap.Alterations)
}

func TestGetValues(t *testing.T) {
	srv, _ := newServer(t)

	resp, err := http.Get(srv.URL + "/values/octave-entries")
	require.NoError(t, err)
	defer resp.Body.Close()

	var values []command.Value
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&values))
	require.Len(t, values, 2)
	assert.Equal(t, "absolute", values[0].Name)
	assert.Equal(t, "relative", values[1].Name)

	resp2, err := http.Get(srv.URL + "/values/tempos")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newServer(t)

	resp, err := http.Get(srv.URL + "/commands")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	srv, _ := newServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/parameters", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

package respaldo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"runtime"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	pingErr    error
	restoreErr error
	bloqueo    chan struct{}
	restores   int
	mu         sync.Mutex
}

func (f *fakeRunner) Dump(ctx context.Context, destino string) error {
	return os.WriteFile(destino, []byte("dump"), 0o644)
}

func (f *fakeRunner) Restore(ctx context.Context, origen string) error {
	f.mu.Lock()
	f.restores++
	f.mu.Unlock()
	if f.bloqueo != nil {
		<-f.bloqueo
	}
	return f.restoreErr
}

func (f *fakeRunner) Ping(ctx context.Context) error { return f.pingErr }

func newTestHandler(t *testing.T, runner Runner) *Handler {
	t.Helper()
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)
	return NewHandler(s, runner)
}

func multipartConBackup(t *testing.T, contenido []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("backup", "base.dump")
	require.NoError(t, err)
	_, err = fw.Write(contenido)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestCrearRespaldo(t *testing.T) {
	h := newTestHandler(t, &fakeRunner{})

	w := httptest.NewRecorder()
	h.Crear(w, httptest.NewRequest(http.MethodPost, "/api/database/backup", nil))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.True(t, h.Storage.Existe(body["filename"]))

	list, err := h.Storage.Listar()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEliminarRespaldoInexistente(t *testing.T) {
	h := newTestHandler(t, &fakeRunner{})

	r := httptest.NewRequest(http.MethodDelete, "/api/database/backup/nada.dump", nil)
	r = mux.SetURLVars(r, map[string]string{"filename": "nada.dump"})
	w := httptest.NewRecorder()
	h.Eliminar(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatus(t *testing.T) {
	h := newTestHandler(t, &fakeRunner{pingErr: errors.New("sin conexión")})

	w := httptest.NewRecorder()
	h.Status(w, httptest.NewRequest(http.MethodGet, "/api/database/status", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Database    bool  `json:"database"`
		BackupCount int   `json:"backupCount"`
		Restoring   bool  `json:"restoring"`
		SizeTotal   int64 `json:"backupSizeTotal"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.False(t, body.Database)
	assert.Equal(t, 0, body.BackupCount)
	assert.False(t, body.Restoring)
}

func TestRestaurarConUpload(t *testing.T) {
	runner := &fakeRunner{}
	h := newTestHandler(t, runner)

	buf, ct := multipartConBackup(t, []byte("contenido del dump"))
	r := httptest.NewRequest(http.MethodPost, "/api/database/restore-with-upload", buf)
	r.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	h.RestaurarConUpload(w, r)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 1, runner.restores)
	assert.False(t, h.restoring.Load(), "el lock se libera al terminar")
}

func TestRestaurarSinArchivo(t *testing.T) {
	h := newTestHandler(t, &fakeRunner{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/api/database/restore-with-upload", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	h.RestaurarConUpload(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRestaurarUnoALaVez(t *testing.T) {
	runner := &fakeRunner{bloqueo: make(chan struct{})}
	h := newTestHandler(t, runner)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		buf, ct := multipartConBackup(t, []byte("dump"))
		r := httptest.NewRequest(http.MethodPost, "/api/database/restore-with-upload", buf)
		r.Header.Set("Content-Type", ct)
		w := httptest.NewRecorder()
		h.RestaurarConUpload(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	}()

	// espera a que el primer restore esté corriendo
	for {
		runner.mu.Lock()
		corriendo := runner.restores > 0
		runner.mu.Unlock()
		if corriendo {
			break
		}
		runtime.Gosched()
	}

	buf, ct := multipartConBackup(t, []byte("dump"))
	r := httptest.NewRequest(http.MethodPost, "/api/database/restore-with-upload", buf)
	r.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	h.RestaurarConUpload(w, r)
	assert.Equal(t, http.StatusConflict, w.Code)

	close(runner.bloqueo)
	wg.Wait()
	assert.Equal(t, 1, runner.restores)
}

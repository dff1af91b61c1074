package respaldo

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Handler expone la administración de respaldos de la base. Todas las rutas
// van detrás de RequireAdmin y del feature flag de backups.
type Handler struct {
	Storage *Storage
	Runner  Runner

	// un único restore a la vez; el segundo recibe 409
	restoring atomic.Bool
}

func NewHandler(storage *Storage, runner Runner) *Handler {
	return &Handler{Storage: storage, Runner: runner}
}

// Listar retorna los respaldos disponibles
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Storage.Listar()
	if err != nil {
		http.Error(w, "error al listar respaldos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// Crear genera un respaldo nuevo con pg_dump
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("backup-%s-%s.dump",
		time.Now().Format("20060102-150405"), uuid.NewString()[:8])
	path, err := h.Storage.Path(filename)
	if err != nil {
		http.Error(w, "nombre de respaldo inválido", http.StatusInternalServerError)
		return
	}

	if err := h.Runner.Dump(r.Context(), path); err != nil {
		log.Printf("pg_dump falló: %v", err)
		http.Error(w, "error al generar respaldo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"filename": filename})
}

// Eliminar borra un respaldo por nombre
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]
	if !h.Storage.Existe(filename) {
		http.Error(w, "respaldo no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Storage.Eliminar(filename); err != nil {
		http.Error(w, "error al borrar respaldo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("respaldo eliminado"))
}

// Descargar sirve el archivo de respaldo
func (h *Handler) Descargar(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]
	path, err := h.Storage.Path(filename)
	if err != nil {
		http.Error(w, "nombre de archivo inválido", http.StatusBadRequest)
		return
	}
	if !h.Storage.Existe(filename) {
		http.Error(w, "respaldo no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Header().Set("Content-Type", "application/octet-stream")
	http.ServeFile(w, r, path)
}

// Status reporta conectividad de la base y estado del directorio de respaldos
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	dbOK := h.Runner.Ping(r.Context()) == nil
	list, err := h.Storage.Listar()
	if err != nil {
		list = nil
	}
	var total int64
	for _, b := range list {
		total += b.Size
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"database":        dbOK,
		"backupCount":     len(list),
		"backupSizeTotal": total,
		"restoring":       h.restoring.Load(),
	})
}

// RestaurarConUpload recibe el dump por multipart, lo baja a un archivo
// temporal y corre pg_restore. Solo un restore a la vez: el flujo original
// apenas deshabilitaba el botón; acá el lock es real.
func (h *Handler) RestaurarConUpload(w http.ResponseWriter, r *http.Request) {
	if !h.restoring.CompareAndSwap(false, true) {
		http.Error(w, "ya hay un restore en curso", http.StatusConflict)
		return
	}
	defer h.restoring.Store(false)

	// dumps comprimidos de bases grandes: tope generoso
	r.Body = http.MaxBytesReader(w, r.Body, 2<<30)
	file, _, err := r.FormFile("backup")
	if err != nil {
		http.Error(w, "falta el archivo 'backup' en el multipart", http.StatusBadRequest)
		return
	}
	defer file.Close()

	staging := filepath.Join(os.TempDir(), "restore-"+uuid.NewString()+".dump")
	dst, err := os.Create(staging)
	if err != nil {
		http.Error(w, "error al preparar el archivo", http.StatusInternalServerError)
		return
	}
	defer os.Remove(staging)

	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		http.Error(w, "error al recibir el archivo", http.StatusInternalServerError)
		return
	}
	if err := dst.Close(); err != nil {
		http.Error(w, "error al cerrar el archivo", http.StatusInternalServerError)
		return
	}

	if err := h.Runner.Restore(r.Context(), staging); err != nil {
		log.Printf("pg_restore falló: %v", err)
		http.Error(w, "error al restaurar la base", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "restored"})
}

package respaldo

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gestioncomercial/api-ventas/internal/utils"
)

// BackupInfo describe un archivo de respaldo listado.
type BackupInfo struct {
	Filename string    `json:"filename"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// Storage administra el directorio de respaldos en disco.
type Storage struct {
	Dir string
}

var ErrNombreInvalido = errors.New("nombre de archivo inválido")

func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Storage{Dir: dir}, nil
}

// Listar retorna los respaldos ordenados del más nuevo al más viejo.
func (s *Storage) Listar() ([]BackupInfo, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, err
	}
	list := make([]BackupInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		list = append(list, BackupInfo{
			Filename: e.Name(),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Modified.After(list[j].Modified) })
	return list, nil
}

// Path resuelve un nombre dentro del directorio rechazando traversal.
func (s *Storage) Path(filename string) (string, error) {
	if !utils.NombreArchivoSeguro(filename) {
		return "", ErrNombreInvalido
	}
	return filepath.Join(s.Dir, filename), nil
}

// Eliminar borra un respaldo por nombre.
func (s *Storage) Eliminar(filename string) error {
	path, err := s.Path(filename)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// Existe indica si hay un respaldo con ese nombre.
func (s *Storage) Existe(filename string) bool {
	path, err := s.Path(filename)
	if err != nil {
		return false
	}
	_, statErr := os.Stat(path)
	return statErr == nil
}

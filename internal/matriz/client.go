package matriz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gestioncomercial/api-ventas/internal/cache"
)

// código de alta idempotente que responde el backend
const codeAlreadyAssigned = "ALREADY_ASSIGNED"

const (
	defaultAttempts = 3
	defaultDelay    = time.Second
)

// AssignmentClient habla con los endpoints de cliente-servicios. Cada
// operación se intenta hasta Attempts veces con una espera fija entre
// intentos; se reintenta ante CUALQUIER error, preservando el comportamiento
// observable del flujo original. El último error se devuelve al llamador.
type AssignmentClient struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
	Cache   *cache.Cache

	Attempts int
	Delay    time.Duration
}

func NewAssignmentClient(baseURL, token string, c *cache.Cache) *AssignmentClient {
	return &AssignmentClient{
		BaseURL:  baseURL,
		Token:    token,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
		Cache:    c,
		Attempts: defaultAttempts,
		Delay:    defaultDelay,
	}
}

type asignacionEnvelope struct {
	Code       string      `json:"code"`
	Asignacion *Asignacion `json:"asignacion"`
}

// Assign crea la asociación. Un ALREADY_ASSIGNED del backend es éxito.
func (c *AssignmentClient) Assign(ctx context.Context, clienteID, servicioID uint, notas string) (*Asignacion, error) {
	body := map[string]any{
		"clientId":   clienteID,
		"servicioId": servicioID,
		"notas":      notas,
	}
	var env asignacionEnvelope
	err := c.conReintentos(ctx, func() error {
		return c.doJSON(ctx, http.MethodPost, "/api/cliente-servicios", body, &env)
	})
	if err != nil {
		return nil, err
	}
	c.invalidar(clienteID, servicioID)
	if env.Code == codeAlreadyAssigned && env.Asignacion == nil {
		// alta idempotente confirmada sin el registro: se arma uno mínimo
		return &Asignacion{ClienteID: clienteID, ServicioID: servicioID}, nil
	}
	return env.Asignacion, nil
}

// Unassign quita la asociación del par.
func (c *AssignmentClient) Unassign(ctx context.Context, clienteID, servicioID uint) error {
	path := fmt.Sprintf("/api/cliente-servicios/cliente/%d/service/%d", clienteID, servicioID)
	err := c.conReintentos(ctx, func() error {
		return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
	})
	if err != nil {
		return err
	}
	c.invalidar(clienteID, servicioID)
	return nil
}

// UpdateNotes muta las notas de una asociación existente.
func (c *AssignmentClient) UpdateNotes(ctx context.Context, asignacionID uint, notas string) (*Asignacion, error) {
	var out Asignacion
	path := fmt.Sprintf("/api/cliente-servicios/%d", asignacionID)
	err := c.conReintentos(ctx, func() error {
		return c.doJSON(ctx, http.MethodPut, path, map[string]string{"notas": notas}, &out)
	})
	if err != nil {
		return nil, err
	}
	c.invalidar(out.ClienteID, out.ServicioID)
	return &out, nil
}

// invalidar refresca los tres grupos que dependen del estado de asignación
func (c *AssignmentClient) invalidar(clienteID, servicioID uint) {
	if c.Cache == nil {
		return
	}
	c.Cache.Invalidate(
		KeyAsignacionesCliente(clienteID),
		KeyClientesServicio(servicioID),
		KeyMatriz,
	)
}

func (c *AssignmentClient) conReintentos(ctx context.Context, op func() error) error {
	attempts := c.Attempts
	if attempts <= 0 {
		attempts = defaultAttempts
	}
	var err error
	for i := 0; i < attempts; i++ {
		if err = op(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.Delay):
		}
	}
	return err
}

func (c *AssignmentClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("http %s %s: %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

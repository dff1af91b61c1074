package matriz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Report es lo que encontró y reparó el health check del backend.
type Report struct {
	Issues []string `json:"issues"`
	Fixed  []string `json:"fixed"`
}

// HealthChecker dispara la reparación de asociaciones una única vez al montar
// la grilla. Es best-effort: el resultado se loguea y nunca bloquea la carga
// de datos que sigue.
type HealthChecker struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewHealthChecker(baseURL, token string) *HealthChecker {
	return &HealthChecker{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Run ejecuta el health check y retorna el reporte.
func (hc *HealthChecker) Run(ctx context.Context) (*Report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		hc.BaseURL+"/api/cliente-servicios/health-check", bytes.NewReader(nil))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if hc.Token != "" {
		req.Header.Set("Authorization", "Bearer "+hc.Token)
	}

	resp, err := hc.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("health-check: http %d", resp.StatusCode)
	}

	var body struct {
		Report *Report `json:"report"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Report == nil {
		// respuesta 200 sin reporte: se trata como reporte vacío
		return &Report{}, nil
	}
	return body.Report, nil
}

// RunBestEffort corre el health check y absorbe cualquier falla: el llamador
// continúa con su fetch de datos pase lo que pase.
func (hc *HealthChecker) RunBestEffort(ctx context.Context) {
	report, err := hc.Run(ctx)
	if err != nil {
		log.Printf("health check de asignaciones falló (se continúa igual): %v", err)
		return
	}
	if len(report.Issues) > 0 {
		log.Printf("health check: %d problemas detectados: %v", len(report.Issues), report.Issues)
	}
	if len(report.Fixed) > 0 {
		log.Printf("health check: %d reparaciones: %v", len(report.Fixed), report.Fixed)
	}
}

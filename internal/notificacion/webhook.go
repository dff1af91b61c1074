package notificacion

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
)

// EnviarAlertaReparacion avisa por webhook que el health check reparó filas
// de asociación. Best-effort: los errores solo se loguean.
func EnviarAlertaReparacion(url string, fixed []string) {
	payload := map[string]interface{}{
		"mensaje": "Alerta: el health check de asignaciones reparó filas inválidas",
		"fixed":   fixed,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Error al enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}

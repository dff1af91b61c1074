package matriz

import (
	"context"
	"fmt"
	"sync"
)

// AssignmentAPI es lo que el coordinador necesita del cliente de asignaciones.
type AssignmentAPI interface {
	Assign(ctx context.Context, clienteID, servicioID uint, notas string) (*Asignacion, error)
	Unassign(ctx context.Context, clienteID, servicioID uint) error
}

// ToggleResult reemplaza los callbacks onSuccess/onError del flujo original:
// el llamador decide qué refrescar según el resultado.
type ToggleResult struct {
	// Started es false cuando ya había una operación en vuelo para el par
	// y no se disparó ninguna request.
	Started bool
	// Assigned es el estado resultante del par tras la operación.
	Assigned bool
}

// ToggleCoordinator serializa los toggles por par (cliente, servicio): a lo
// sumo una operación en vuelo por clave. Pares distintos corren en paralelo
// sin orden garantizado; las vistas se reconcilian re-consultando.
type ToggleCoordinator struct {
	api AssignmentAPI

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewToggleCoordinator(api AssignmentAPI) *ToggleCoordinator {
	return &ToggleCoordinator{
		api:      api,
		inFlight: make(map[string]struct{}),
	}
}

// Toggle invierte el estado de asignación del par. El estado actual se lee
// de cliente.Servicios tal como lo conoce el llamador. No hay rollback ante
// error: el llamador re-consulta para recuperar una vista consistente.
func (tc *ToggleCoordinator) Toggle(ctx context.Context, cliente *Cliente, servicio *Servicio) (ToggleResult, error) {
	key := fmt.Sprintf("%d-%d", cliente.ID, servicio.ID)

	tc.mu.Lock()
	if _, ocupado := tc.inFlight[key]; ocupado {
		tc.mu.Unlock()
		return ToggleResult{Started: false}, nil
	}
	tc.inFlight[key] = struct{}{}
	tc.mu.Unlock()

	// la marca se limpia siempre, con o sin error
	defer func() {
		tc.mu.Lock()
		delete(tc.inFlight, key)
		tc.mu.Unlock()
	}()

	asignado := cliente.TieneServicio(servicio.ID)
	if asignado {
		if err := tc.api.Unassign(ctx, cliente.ID, servicio.ID); err != nil {
			return ToggleResult{Started: true, Assigned: true}, err
		}
		return ToggleResult{Started: true, Assigned: false}, nil
	}

	if _, err := tc.api.Assign(ctx, cliente.ID, servicio.ID, ""); err != nil {
		return ToggleResult{Started: true, Assigned: false}, err
	}
	return ToggleResult{Started: true, Assigned: true}, nil
}

// Package cache implementa la caché observable de consultas que comparten
// las vistas: un mapa de clave a dato con suscriptores por clave. Las
// mutaciones invalidan claves puntuales; nunca hay lock global de lectura
// sostenido durante un fetch.
package cache

import (
	"sync"
)

type entry struct {
	data        any
	subscribers map[int]func()
}

// Cache es seguro para uso concurrente.
type Cache struct {
	mu     sync.RWMutex
	items  map[string]*entry
	nextID int
}

func New() *Cache {
	return &Cache{items: map[string]*entry{}}
}

// Get retorna el dato cacheado bajo la clave, si existe.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.items[key]
	if !ok || e.data == nil {
		return nil, false
	}
	return e.data, true
}

// Set guarda el dato bajo la clave sin notificar: el dato nuevo ya es fresco.
func (c *Cache) Set(key string, data any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.ensure(key)
	e.data = data
}

// Subscribe registra un callback que se dispara cuando la clave se invalida.
// Retorna la función para darse de baja.
func (c *Cache) Subscribe(key string, fn func()) (unsubscribe func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.ensure(key)
	id := c.nextID
	c.nextID++
	e.subscribers[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if e, ok := c.items[key]; ok {
			delete(e.subscribers, id)
		}
	}
}

// Invalidate descarta los datos de las claves y notifica a sus suscriptores
// para que re-consulten la fuente de verdad.
func (c *Cache) Invalidate(keys ...string) {
	var fns []func()
	c.mu.Lock()
	for _, key := range keys {
		if e, ok := c.items[key]; ok {
			e.data = nil
			for _, fn := range e.subscribers {
				fns = append(fns, fn)
			}
		}
	}
	c.mu.Unlock()

	// los callbacks corren fuera del lock: pueden volver a tocar la caché
	for _, fn := range fns {
		fn()
	}
}

func (c *Cache) ensure(key string) *entry {
	e, ok := c.items[key]
	if !ok {
		e = &entry{subscribers: map[int]func(){}}
		c.items[key] = e
	}
	return e
}

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetGet(t *testing.T) {
	c := New()

	_, ok := c.Get("clientes")
	assert.False(t, ok)

	c.Set("clientes", []string{"a", "b"})
	v, ok := c.Get("clientes")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, v)
}

func TestInvalidateNotificaSuscriptores(t *testing.T) {
	c := New()
	c.Set("k1", 1)
	c.Set("k2", 2)

	var avisos []string
	c.Subscribe("k1", func() { avisos = append(avisos, "k1") })
	c.Subscribe("k2", func() { avisos = append(avisos, "k2") })

	c.Invalidate("k1")

	_, ok := c.Get("k1")
	assert.False(t, ok, "el dato invalidado se descarta")
	_, ok = c.Get("k2")
	assert.True(t, ok, "las otras claves no se tocan")
	assert.Equal(t, []string{"k1"}, avisos)

	c.Invalidate("k1", "k2")
	assert.Equal(t, []string{"k1", "k1", "k2"}, avisos)
}

func TestUnsubscribe(t *testing.T) {
	c := New()
	c.Set("k", 1)

	llamado := false
	cancel := c.Subscribe("k", func() { llamado = true })
	cancel()

	c.Invalidate("k")
	assert.False(t, llamado)
}

func TestInvalidateClaveDesconocida(t *testing.T) {
	c := New()
	c.Invalidate("nada") // no hace nada, no entra en pánico
}

func TestCallbackPuedeVolverATocarLaCache(t *testing.T) {
	c := New()
	c.Set("k", "viejo")

	// un suscriptor que re-consulta y repuebla, como hacen las vistas
	c.Subscribe("k", func() { c.Set("k", "fresco") })
	c.Invalidate("k")

	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "fresco", v)
}

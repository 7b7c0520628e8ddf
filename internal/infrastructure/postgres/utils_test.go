package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "sesion fotografica", fold("Sesión Fotográfica"))
	assert.Equal(t, "nino", fold("NIÑO"))
	assert.Equal(t, "sin cambios", fold("sin cambios"))
}

func TestEscapeLike(t *testing.T) {
	// Un % literal en el término no debe convertirse en comodín.
	assert.Equal(t, `100\% fotos`, escapeLike(`100% fotos`))
	assert.Equal(t, `guion\_bajo`, escapeLike(`guion_bajo`))
	assert.Equal(t, `barra\\invertida`, escapeLike(`barra\invertida`))
	assert.Equal(t, "normal", escapeLike("normal"))
}

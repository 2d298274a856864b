package services_test

import (
	"testing"

	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestHeaderMatcher_Find(t *testing.T) {
	testCases := []struct {
		name     string
		headers  []string
		synonyms []string
		want     int
	}{
		{"exact ignoring case", []string{"Nombre", "SKU"}, []string{"id", "sku"}, 1},
		{"exact ignoring accents", []string{"Ubicación"}, []string{"ubicacion"}, 0},
		{"substring with accents", []string{"Código", "Descripción del producto"}, []string{"name", "descripcio"}, 1},
		{"exact on a later synonym beats substring", []string{"Costo unitario", "precio"}, []string{"costo", "precio"}, 1},
		{"short key needs whole word", []string{"Cantidad", "Producto ID"}, []string{"id"}, 1},
		{"short key never matches inside words", []string{"Cantidad"}, []string{"id"}, -1},
		{"one typo on long keys", []string{"Dimensiónes", "Famlia"}, []string{"familia"}, 1},
		{"no typo tolerance on short keys", []string{"tpo"}, []string{"tipo"}, -1},
		{"typo inside a longer header", []string{"Inventaro actual"}, []string{"inventario"}, 0},
		{"nothing matches", []string{"foo", "bar"}, []string{"stock"}, -1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := services.NewHeaderMatcher(tc.headers)

			assert.Equal(t, tc.want, m.Find(tc.synonyms...))
		})
	}
}

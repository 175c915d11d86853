package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretarOpcionCategoria(t *testing.T) {
	categorias := []string{"alimentos", "electronica", "ropa"}

	casos := []struct {
		nombre  string
		opcion  int
		esperan Seleccion
	}{
		{"primera categoría", 1, Seleccion{Tipo: SeleccionCategoria, Categoria: "alimentos"}},
		{"última categoría", 3, Seleccion{Tipo: SeleccionCategoria, Categoria: "ropa"}},
		{"len+1 finaliza", 4, Seleccion{Tipo: SeleccionFinalizar}},
		{"len+2 cancela todo", 5, Seleccion{Tipo: SeleccionCancelarTodo}},
		{"cero es inválida", 0, Seleccion{Tipo: SeleccionInvalida}},
		{"fuera de rango es inválida", 6, Seleccion{Tipo: SeleccionInvalida}},
		{"negativa es inválida", -1, Seleccion{Tipo: SeleccionInvalida}},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperan, InterpretarOpcionCategoria(c.opcion, categorias))
		})
	}
}

func TestInterpretarOpcionCategoria_SinCategorias(t *testing.T) {
	assert.Equal(t, Seleccion{Tipo: SeleccionFinalizar}, InterpretarOpcionCategoria(1, nil))
	assert.Equal(t, Seleccion{Tipo: SeleccionCancelarTodo}, InterpretarOpcionCategoria(2, nil))
}

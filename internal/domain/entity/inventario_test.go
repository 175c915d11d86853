package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStock_CantidadInsensibleAlCaso(t *testing.T) {
	stock := Stock{"ropa": {"camisa": 3}}

	cantidad, ok := stock.Cantidad("Ropa", "  CAMISA ")
	require.True(t, ok)
	assert.Equal(t, 3, cantidad)

	_, ok = stock.Cantidad("ropa", "pantalon")
	assert.False(t, ok)
}

func TestStock_Ajustar(t *testing.T) {
	stock := Stock{}

	stock.Ajustar("Ropa", "Camisa", 5)

	cantidad, ok := stock.Cantidad("ropa", "camisa")
	require.True(t, ok, "las claves deben guardarse en minúsculas")
	assert.Equal(t, 5, cantidad)
}

func TestStock_Descontar(t *testing.T) {
	t.Run("descuenta normalmente", func(t *testing.T) {
		stock := Stock{"ropa": {"camisa": 5}}

		resultado, existia, ajustado := stock.Descontar("ropa", "camisa", 2)

		assert.Equal(t, 3, resultado)
		assert.True(t, existia)
		assert.False(t, ajustado)
	})

	t.Run("ajusta a cero si el resultado sería negativo", func(t *testing.T) {
		stock := Stock{"ropa": {"camisa": 4}}

		resultado, existia, ajustado := stock.Descontar("ropa", "camisa", 10)

		assert.Equal(t, 0, resultado)
		assert.True(t, existia)
		assert.True(t, ajustado)
	})

	t.Run("producto inexistente", func(t *testing.T) {
		stock := Stock{"ropa": {}}

		_, existia, _ := stock.Descontar("ropa", "camisa", 1)

		assert.False(t, existia)
	})
}

func TestStock_AgregarCategoria(t *testing.T) {
	stock := Stock{}

	require.True(t, stock.AgregarCategoria("Ropa"))
	assert.False(t, stock.AgregarCategoria("ROPA"), "duplicado insensible al caso")
	assert.True(t, stock.ExisteCategoria("ropa"))
}

func TestStock_EliminarProductoYCategoria(t *testing.T) {
	stock := Stock{"ropa": {"camisa": 3, "pantalon": 1}}

	require.True(t, stock.EliminarProducto("ropa", "camisa"))
	assert.False(t, stock.EliminarProducto("ropa", "camisa"))

	require.True(t, stock.EliminarCategoria("ropa"))
	assert.False(t, stock.ExisteCategoria("ropa"))
	assert.False(t, stock.EliminarCategoria("ropa"))
}

func TestStock_CategoriasConStock(t *testing.T) {
	stock := Stock{
		"ropa":        {"camisa": 0},
		"alimentos":   {"arroz": 2},
		"electronica": {},
	}

	assert.Equal(t, []string{"alimentos"}, stock.CategoriasConStock())
	assert.Equal(t, []string{"alimentos", "electronica", "ropa"}, stock.Categorias())
}

func TestStock_ProductosConStock(t *testing.T) {
	stock := Stock{"ropa": {"camisa": 0, "pantalon": 2, "buzo": 1}}

	assert.Equal(t, []string{"buzo", "pantalon"}, stock.ProductosConStock("ropa"))
	assert.Equal(t, []string{"buzo", "camisa", "pantalon"}, stock.Productos("ropa"))
}

func TestStock_CloneEsProfundo(t *testing.T) {
	original := Stock{"ropa": {"camisa": 3}}

	copia := original.Clone()
	copia.Descontar("ropa", "camisa", 2)

	cantidad, _ := original.Cantidad("ropa", "camisa")
	assert.Equal(t, 3, cantidad, "mutar la copia no debe tocar el original")

	restante, _ := copia.Cantidad("ropa", "camisa")
	assert.Equal(t, 1, restante)
}

func TestPrecios_DefinirYPrecio(t *testing.T) {
	precios := Precios{}

	precios.Definir("Ropa", "Camisa", decimal.NewFromFloat(15.5))

	precio, ok := precios.Precio("ropa", "CAMISA")
	require.True(t, ok)
	assert.True(t, precio.Equal(decimal.NewFromFloat(15.5)))

	_, ok = precios.Precio("ropa", "pantalon")
	assert.False(t, ok, "un producto sin precio definido se tolera")
}

func TestPrecios_EliminarProducto(t *testing.T) {
	precios := Precios{"ropa": {"camisa": decimal.NewFromInt(10)}}

	assert.True(t, precios.EliminarProducto("ropa", "camisa"))
	assert.False(t, precios.EliminarProducto("ropa", "camisa"))
}

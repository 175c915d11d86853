package usecase

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/jsonstore"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

func inventarioDePrueba(t *testing.T) (*InventarioUseCase, *jsonstore.InventarioRepo) {
	t.Helper()
	dir := t.TempDir()
	repo := jsonstore.NewInventarioRepository(logger.Nop(),
		filepath.Join(dir, "stock.json"), filepath.Join(dir, "precios.json"))
	return NewInventarioUseCase(repo, logger.Nop()), repo
}

func TestInventario_AgregarCategoria(t *testing.T) {
	uc, repo := inventarioDePrueba(t)

	require.NoError(t, uc.AgregarCategoria("Ropa"))

	assert.True(t, repo.Stock().ExisteCategoria("ropa"))
	assert.True(t, repo.Precios().ExisteCategoria("ropa"), "la categoría se crea en ambos documentos")

	assert.ErrorIs(t, uc.AgregarCategoria("ROPA"), domain.ErrDuplicate)
	assert.ErrorIs(t, uc.AgregarCategoria("  "), domain.ErrInvalidInput)
}

func TestInventario_AgregarProducto(t *testing.T) {
	uc, repo := inventarioDePrueba(t)
	require.NoError(t, uc.AgregarCategoria("ropa"))

	require.NoError(t, uc.AgregarProducto("ropa", "Camisa", 5, decimal.NewFromFloat(15.0)))

	cantidad, ok := repo.Stock().Cantidad("ropa", "camisa")
	require.True(t, ok)
	assert.Equal(t, 5, cantidad)

	precio, ok := repo.Precios().Precio("ropa", "camisa")
	require.True(t, ok)
	assert.True(t, precio.Equal(decimal.NewFromFloat(15.0)))
}

func TestInventario_AgregarProductoValidaciones(t *testing.T) {
	uc, _ := inventarioDePrueba(t)
	require.NoError(t, uc.AgregarCategoria("ropa"))
	require.NoError(t, uc.AgregarProducto("ropa", "camisa", 1, decimal.NewFromInt(10)))

	assert.ErrorIs(t, uc.AgregarProducto("otra", "camisa", 1, decimal.NewFromInt(10)), domain.ErrNotFound)
	assert.ErrorIs(t, uc.AgregarProducto("ropa", "camisa", 1, decimal.NewFromInt(10)), domain.ErrDuplicate)
	assert.ErrorIs(t, uc.AgregarProducto("ropa", "buzo", -1, decimal.NewFromInt(10)), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.AgregarProducto("ropa", "buzo", 1, decimal.NewFromInt(-10)), domain.ErrInvalidInput)
}

func TestInventario_ModificarStock(t *testing.T) {
	uc, repo := inventarioDePrueba(t)
	require.NoError(t, uc.AgregarCategoria("ropa"))
	require.NoError(t, uc.AgregarProducto("ropa", "camisa", 5, decimal.NewFromInt(10)))

	require.NoError(t, uc.ModificarStock("ropa", "camisa", 0))

	cantidad, _ := repo.Stock().Cantidad("ropa", "camisa")
	assert.Equal(t, 0, cantidad)

	assert.ErrorIs(t, uc.ModificarStock("ropa", "camisa", -1), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.ModificarStock("ropa", "inexistente", 1), domain.ErrNotFound)
}

func TestInventario_ModificarPrecio(t *testing.T) {
	uc, repo := inventarioDePrueba(t)
	require.NoError(t, uc.AgregarCategoria("ropa"))
	require.NoError(t, uc.AgregarProducto("ropa", "camisa", 5, decimal.NewFromInt(10)))

	require.NoError(t, uc.ModificarPrecio("ropa", "camisa", decimal.NewFromFloat(12.5)))

	precio, _ := repo.Precios().Precio("ropa", "camisa")
	assert.True(t, precio.Equal(decimal.NewFromFloat(12.5)))

	assert.ErrorIs(t, uc.ModificarPrecio("ropa", "inexistente", decimal.NewFromInt(1)), domain.ErrNotFound)
	assert.ErrorIs(t, uc.ModificarPrecio("ropa", "camisa", decimal.NewFromInt(-1)), domain.ErrInvalidInput)
}

func TestInventario_EliminarProducto(t *testing.T) {
	uc, repo := inventarioDePrueba(t)
	require.NoError(t, uc.AgregarCategoria("ropa"))
	require.NoError(t, uc.AgregarProducto("ropa", "camisa", 5, decimal.NewFromInt(10)))

	precioExistia, err := uc.EliminarProducto("ropa", "camisa")
	require.NoError(t, err)
	assert.True(t, precioExistia)

	_, ok := repo.Stock().Cantidad("ropa", "camisa")
	assert.False(t, ok)
	_, ok = repo.Precios().Precio("ropa", "camisa")
	assert.False(t, ok)

	_, err = uc.EliminarProducto("ropa", "camisa")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventario_EliminarProductoSinPrecio(t *testing.T) {
	uc, repo := inventarioDePrueba(t)
	require.NoError(t, uc.AgregarCategoria("ropa"))
	repo.Stock().Ajustar("ropa", "camisa", 2) // alta directa sin precio

	precioExistia, err := uc.EliminarProducto("ropa", "camisa")

	require.NoError(t, err)
	assert.False(t, precioExistia)
}

func TestInventario_EliminarCategoria(t *testing.T) {
	uc, repo := inventarioDePrueba(t)
	require.NoError(t, uc.AgregarCategoria("ropa"))
	require.NoError(t, uc.AgregarProducto("ropa", "camisa", 5, decimal.NewFromInt(10)))

	require.NoError(t, uc.EliminarCategoria("ropa"))

	assert.False(t, repo.Stock().ExisteCategoria("ropa"))
	assert.False(t, repo.Precios().ExisteCategoria("ropa"))
	assert.ErrorIs(t, uc.EliminarCategoria("ropa"), domain.ErrNotFound)
}

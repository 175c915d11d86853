package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// InventarioUseCase casos de uso de administración de inventario: altas,
// modificaciones y bajas de categorías y productos sobre los documentos
// paralelos de stock y precios.
type InventarioUseCase struct {
	repo repository.InventarioRepository
	log  *logger.Logger
}

// NewInventarioUseCase construye el caso de uso.
func NewInventarioUseCase(repo repository.InventarioRepository, log *logger.Logger) *InventarioUseCase {
	return &InventarioUseCase{repo: repo, log: log}
}

// AgregarCategoria crea una categoría vacía en stock y precios.
// Devuelve ErrDuplicate si ya existe (insensible al caso).
func (uc *InventarioUseCase) AgregarCategoria(nombre string) error {
	nombre = strings.ToLower(strings.TrimSpace(nombre))
	if nombre == "" {
		return domain.ErrInvalidInput
	}
	if !uc.repo.Stock().AgregarCategoria(nombre) {
		return domain.ErrDuplicate
	}
	uc.repo.Precios().AgregarCategoria(nombre)
	if err := uc.repo.GuardarStock(); err != nil {
		return err
	}
	if err := uc.repo.GuardarPrecios(); err != nil {
		return err
	}
	uc.log.Info().Str("categoria", nombre).Msg("categoría agregada")
	return nil
}

// AgregarProducto da de alta un producto con stock y precio iniciales en una
// categoría existente. Devuelve ErrNotFound si la categoría no existe,
// ErrDuplicate si el producto ya está y ErrInvalidInput ante negativos.
func (uc *InventarioUseCase) AgregarProducto(categoria, producto string, cantidad int, precio decimal.Decimal) error {
	categoria = strings.ToLower(strings.TrimSpace(categoria))
	producto = strings.ToLower(strings.TrimSpace(producto))
	if categoria == "" || producto == "" {
		return domain.ErrInvalidInput
	}
	if cantidad < 0 || precio.IsNegative() {
		return domain.ErrInvalidInput
	}
	stock := uc.repo.Stock()
	if !stock.ExisteCategoria(categoria) {
		return domain.ErrNotFound
	}
	if _, ok := stock.Cantidad(categoria, producto); ok {
		return domain.ErrDuplicate
	}
	stock.Ajustar(categoria, producto, cantidad)
	uc.repo.Precios().Definir(categoria, producto, precio)
	if err := uc.repo.GuardarStock(); err != nil {
		return err
	}
	if err := uc.repo.GuardarPrecios(); err != nil {
		return err
	}
	uc.log.Info().
		Str("categoria", categoria).
		Str("producto", producto).
		Int("cantidad", cantidad).
		Str("precio", precio.String()).
		Msg("producto agregado")
	return nil
}

// ModificarStock fija el stock de un producto existente.
func (uc *InventarioUseCase) ModificarStock(categoria, producto string, nuevo int) error {
	if nuevo < 0 {
		return domain.ErrInvalidInput
	}
	stock := uc.repo.Stock()
	if _, ok := stock.Cantidad(categoria, producto); !ok {
		return domain.ErrNotFound
	}
	stock.Ajustar(categoria, producto, nuevo)
	if err := uc.repo.GuardarStock(); err != nil {
		return err
	}
	uc.log.Info().Str("categoria", categoria).Str("producto", producto).Int("stock", nuevo).Msg("stock modificado")
	return nil
}

// ModificarPrecio fija el precio de un producto existente en la lista de precios.
func (uc *InventarioUseCase) ModificarPrecio(categoria, producto string, nuevo decimal.Decimal) error {
	if nuevo.IsNegative() {
		return domain.ErrInvalidInput
	}
	precios := uc.repo.Precios()
	if _, ok := precios.Precio(categoria, producto); !ok {
		return domain.ErrNotFound
	}
	precios.Definir(categoria, producto, nuevo)
	if err := uc.repo.GuardarPrecios(); err != nil {
		return err
	}
	uc.log.Info().Str("categoria", categoria).Str("producto", producto).Str("precio", nuevo.String()).Msg("precio modificado")
	return nil
}

// EliminarProducto borra el producto del stock y, si existe, su precio.
// Devuelve si el precio estaba definido (para informar al usuario).
func (uc *InventarioUseCase) EliminarProducto(categoria, producto string) (precioExistia bool, err error) {
	if !uc.repo.Stock().EliminarProducto(categoria, producto) {
		return false, domain.ErrNotFound
	}
	precioExistia = uc.repo.Precios().EliminarProducto(categoria, producto)
	if err := uc.repo.GuardarStock(); err != nil {
		return precioExistia, err
	}
	if err := uc.repo.GuardarPrecios(); err != nil {
		return precioExistia, err
	}
	uc.log.Info().Str("categoria", categoria).Str("producto", producto).Msg("producto eliminado")
	return precioExistia, nil
}

// EliminarCategoria borra la categoría completa del stock y de los precios.
func (uc *InventarioUseCase) EliminarCategoria(categoria string) error {
	if !uc.repo.Stock().EliminarCategoria(categoria) {
		return domain.ErrNotFound
	}
	uc.repo.Precios().EliminarCategoria(categoria)
	if err := uc.repo.GuardarStock(); err != nil {
		return err
	}
	if err := uc.repo.GuardarPrecios(); err != nil {
		return err
	}
	uc.log.Info().Str("categoria", categoria).Msg("categoría eliminada con todos sus productos")
	return nil
}

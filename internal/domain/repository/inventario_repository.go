package repository

import "github.com/jhoicas/tienda-cli/internal/domain/entity"

// InventarioRepository define el puerto de persistencia para el inventario
// (stock y precios, documentos paralelos). Stock y Precios devuelven la
// referencia autoritativa en memoria; quien muta debe llamar al Guardar
// correspondiente para reescribir el documento completo.
type InventarioRepository interface {
	Stock() entity.Stock
	Precios() entity.Precios
	GuardarStock() error
	GuardarPrecios() error
}

package jsonstore

import (
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

var _ repository.InventarioRepository = (*InventarioRepo)(nil)

// InventarioRepo implementación del puerto InventarioRepository sobre los
// documentos paralelos stock.json y precios.json.
type InventarioRepo struct {
	log         *logger.Logger
	rutaStock   string
	rutaPrecios string
	stock       entity.Stock
	precios     entity.Precios
}

// NewInventarioRepository carga stock.json y precios.json (creándolos
// vacíos si no existen) y construye el adaptador de inventario.
func NewInventarioRepository(log *logger.Logger, rutaStock, rutaPrecios string) *InventarioRepo {
	return &InventarioRepo{
		log:         log,
		rutaStock:   rutaStock,
		rutaPrecios: rutaPrecios,
		stock:       Cargar(log, rutaStock, entity.Stock{}),
		precios:     Cargar(log, rutaPrecios, entity.Precios{}),
	}
}

// Stock devuelve la referencia autoritativa del stock en memoria.
func (r *InventarioRepo) Stock() entity.Stock { return r.stock }

// Precios devuelve la referencia autoritativa de los precios en memoria.
func (r *InventarioRepo) Precios() entity.Precios { return r.precios }

// GuardarStock reescribe stock.json completo.
func (r *InventarioRepo) GuardarStock() error {
	return Guardar(r.log, r.rutaStock, r.stock)
}

// GuardarPrecios reescribe precios.json completo.
func (r *InventarioRepo) GuardarPrecios() error {
	return Guardar(r.log, r.rutaPrecios, r.precios)
}

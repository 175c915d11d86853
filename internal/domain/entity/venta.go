package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaItem es una línea de detalle de una venta confirmada.
type VentaItem struct {
	Categoria      string          `json:"categoria"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// Venta es el registro inmutable de una compra confirmada. Se agrega al
// final de historial_ventas.json y nunca se modifica.
type Venta struct {
	ID           string          `json:"id"`
	ClienteEmail string          `json:"cliente_email"`
	Items        []VentaItem     `json:"items"`
	CostoTotal   decimal.Decimal `json:"costo_total"`
	Fecha        time.Time       `json:"fecha"`
}

// ResumenVenta es el registro reducido que alimenta el reporte de
// cumplimiento de objetivo (ventas_realizadas.json).
type ResumenVenta struct {
	Subtotal decimal.Decimal `json:"subtotal"`
}

// CalcularSubtotal devuelve cantidad × precio unitario.
func CalcularSubtotal(cantidad int, precioUnitario decimal.Decimal) decimal.Decimal {
	return precioUnitario.Mul(decimal.NewFromInt(int64(cantidad)))
}

// CalcularTotal suma los subtotales de los items. Una lista vacía vale 0.
func CalcularTotal(items []VentaItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}
	return total
}

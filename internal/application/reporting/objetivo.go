package reporting

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
)

var cien = decimal.NewFromInt(100)

// GananciaAcumulada suma los subtotales de las ventas realizadas.
// Una secuencia vacía vale 0.
func GananciaAcumulada(resumenes []entity.ResumenVenta) decimal.Decimal {
	total := decimal.Zero
	for _, r := range resumenes {
		total = total.Add(r.Subtotal)
	}
	return total
}

// PorcentajeObjetivo devuelve (ganancia / objetivo) × 100. Un objetivo no
// positivo se rechaza con ErrObjetivoInvalido: el cero es una cancelación
// del usuario, nunca una división por cero.
func PorcentajeObjetivo(ganancia, objetivo decimal.Decimal) (decimal.Decimal, error) {
	if objetivo.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrObjetivoInvalido
	}
	return ganancia.Div(objetivo).Mul(cien), nil
}

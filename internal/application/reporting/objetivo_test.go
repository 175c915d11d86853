package reporting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
)

func TestGananciaAcumulada(t *testing.T) {
	resumenes := []entity.ResumenVenta{
		{Subtotal: decimal.NewFromFloat(100.50)},
		{Subtotal: decimal.NewFromFloat(49.50)},
	}

	assert.True(t, GananciaAcumulada(resumenes).Equal(decimal.NewFromInt(150)))
	assert.True(t, GananciaAcumulada(nil).Equal(decimal.Zero))
}

func TestPorcentajeObjetivo(t *testing.T) {
	porcentaje, err := PorcentajeObjetivo(decimal.NewFromInt(150), decimal.NewFromInt(200))
	require.NoError(t, err)
	assert.True(t, porcentaje.Equal(decimal.NewFromInt(75)))
}

func TestPorcentajeObjetivo_SuperaElCien(t *testing.T) {
	porcentaje, err := PorcentajeObjetivo(decimal.NewFromInt(300), decimal.NewFromInt(200))
	require.NoError(t, err)
	assert.True(t, porcentaje.Equal(decimal.NewFromInt(150)))
}

func TestPorcentajeObjetivo_Invalido(t *testing.T) {
	_, err := PorcentajeObjetivo(decimal.NewFromInt(150), decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrObjetivoInvalido)

	_, err = PorcentajeObjetivo(decimal.NewFromInt(150), decimal.NewFromInt(-10))
	assert.ErrorIs(t, err, domain.ErrObjetivoInvalido)
}

package cli

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/application/reporting"
	"github.com/jhoicas/tienda-cli/internal/domain"
)

// verHistorialVentasAdmin muestra el historial completo de ventas en
// páginas, con navegación s/a/q o un número de página explícito.
func (c *CLI) verHistorialVentasAdmin() {
	ventas := c.ventas.Historial()
	if len(ventas) == 0 {
		c.p.Imprimir("\nℹ️ Aún no se han registrado ventas.")
		return
	}

	porPagina := c.cfg.Ventas.PorPagina
	pagina := 1
	for !c.p.EOF() {
		c.p.Imprimir("\n📈 --- HISTORIAL DE VENTAS (Total: %d) ---", len(ventas))

		inicio, fin := reporting.LimitesPagina(pagina, porPagina)
		if fin > len(ventas) {
			fin = len(ventas)
		}
		for i, venta := range reporting.Pagina(ventas, pagina, porPagina) {
			c.mostrarVenta(inicio+i+1, venta, true)
		}
		c.p.Imprimir(strings.Repeat("-", 70))
		c.p.Imprimir("Mostrando Página %d de %d (Ventas %d a %d)",
			pagina, reporting.MaxPaginas(len(ventas), porPagina), inicio+1, fin)

		entrada := c.p.Pedir("\n→ Navegación: (s)iguiente, (a)nterior, (q) salir, o número de página: ")
		if c.p.EOF() {
			return
		}
		accion := reporting.InterpretarNavegacion(entrada)
		if accion.Tipo == reporting.NavSalir {
			c.p.Imprimir("↩️ Saliendo del historial de ventas.")
			return
		}
		siguiente, err := reporting.Avanzar(accion, pagina, len(ventas), porPagina)
		switch {
		case err == nil:
		case errors.Is(err, reporting.ErrUltimaPagina):
			c.p.Imprimir("ℹ️ Ya estás en la última página.")
		case errors.Is(err, reporting.ErrPrimeraPagina):
			c.p.Imprimir("ℹ️ Ya estás en la primera página.")
		case errors.Is(err, domain.ErrPaginaInvalida):
			c.p.Imprimir("⚠️ Número de página fuera de rango (1 a %d).", reporting.MaxPaginas(len(ventas), porPagina))
		default:
			c.p.Imprimir("⚠️ Entrada inválida. Usá 's', 'a', 'q' o un número de página.")
		}
		pagina = siguiente
	}
}

// verHistorialCliente lista todas las compras del cliente con sesión
// activa, sin paginar.
func (c *CLI) verHistorialCliente() {
	compras := c.ventas.PorCliente(c.sesion.Email)
	if len(compras) == 0 {
		c.p.Imprimir("\nℹ️ Aún no has realizado ninguna compra.")
		return
	}

	c.p.Imprimir("\n🧾 --- TU HISTORIAL DE COMPRAS (%s) ---", c.sesion.Nombre)
	for i, venta := range compras {
		c.mostrarVenta(i+1, venta, false)
	}
	c.p.Imprimir(strings.Repeat("-", 70))
	c.p.Imprimir("Total de compras realizadas: %d", len(compras))
}

// consultarObjetivo pide un objetivo de recaudación y muestra la ganancia
// acumulada junto al porcentaje alcanzado. Un 0 cancela la consulta.
func (c *CLI) consultarObjetivo() {
	ganancia := reporting.GananciaAcumulada(c.ventas.Resumenes())

	for !c.p.EOF() {
		entrada := c.p.Pedir("\n🎯 Ingresá el objetivo de recaudación (0 para cancelar): ")
		if entrada == "" {
			c.p.Imprimir("⚠️ No ingresaste ningún valor.")
			continue
		}
		objetivo, err := decimal.NewFromString(strings.ReplaceAll(entrada, ",", "."))
		if err != nil {
			c.p.Imprimir("⚠️ Ingresá un número válido.")
			continue
		}
		if objetivo.IsZero() {
			c.p.Imprimir("↩️ Consulta de objetivo cancelada.")
			return
		}
		porcentaje, err := reporting.PorcentajeObjetivo(ganancia, objetivo)
		if err != nil {
			c.p.Imprimir("⚠️ El objetivo debe ser un número positivo.")
			continue
		}
		c.p.Imprimir("\n💰 Ganancia acumulada: %s", Dinero(ganancia))
		c.p.Imprimir("🎯 Objetivo: %s", Dinero(objetivo))
		c.p.Imprimir("📊 Porcentaje alcanzado: %s%%", porcentaje.StringFixed(2))
		c.log.Info().Str("objetivo", objetivo.String()).Str("porcentaje", porcentaje.StringFixed(2)).Msg("objetivo consultado")
		return
	}
}

package repository

import "github.com/jhoicas/tienda-cli/internal/domain/entity"

// VentaRepository define el puerto de persistencia para las ventas.
// El historial es una secuencia de solo-agregado; Registrar agrega la venta
// al historial y su resumen a ventas_realizadas, y persiste ambos documentos.
type VentaRepository interface {
	Historial() []entity.Venta
	PorCliente(email string) []entity.Venta
	Resumenes() []entity.ResumenVenta
	Registrar(venta entity.Venta) error
}

package jsonstore

import (
	"strings"

	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación del puerto VentaRepository sobre
// historial_ventas.json y ventas_realizadas.json.
type VentaRepo struct {
	log           *logger.Logger
	rutaHistorial string
	rutaResumenes string
	historial     []entity.Venta
	resumenes     []entity.ResumenVenta
}

// NewVentaRepository carga ambos documentos de ventas (creándolos como
// listas vacías si no existen) y construye el adaptador.
func NewVentaRepository(log *logger.Logger, rutaHistorial, rutaResumenes string) *VentaRepo {
	return &VentaRepo{
		log:           log,
		rutaHistorial: rutaHistorial,
		rutaResumenes: rutaResumenes,
		historial:     Cargar(log, rutaHistorial, []entity.Venta{}),
		resumenes:     Cargar(log, rutaResumenes, []entity.ResumenVenta{}),
	}
}

// Historial devuelve todas las ventas en orden de registro.
func (r *VentaRepo) Historial() []entity.Venta { return r.historial }

// PorCliente devuelve las ventas de un cliente en orden de registro.
func (r *VentaRepo) PorCliente(email string) []entity.Venta {
	email = strings.ToLower(strings.TrimSpace(email))
	var ventas []entity.Venta
	for _, v := range r.historial {
		if v.ClienteEmail == email {
			ventas = append(ventas, v)
		}
	}
	return ventas
}

// Resumenes devuelve los resúmenes de ventas realizadas.
func (r *VentaRepo) Resumenes() []entity.ResumenVenta { return r.resumenes }

// Registrar agrega la venta al historial y su resumen a ventas realizadas,
// y reescribe ambos documentos completos.
func (r *VentaRepo) Registrar(venta entity.Venta) error {
	r.historial = append(r.historial, venta)
	if err := Guardar(r.log, r.rutaHistorial, r.historial); err != nil {
		return err
	}
	r.resumenes = append(r.resumenes, entity.ResumenVenta{Subtotal: venta.CostoTotal})
	return Guardar(r.log, r.rutaResumenes, r.resumenes)
}

// Flush reescribe ambos documentos con el estado en memoria.
func (r *VentaRepo) Flush() error {
	if err := Guardar(r.log, r.rutaHistorial, r.historial); err != nil {
		return err
	}
	return Guardar(r.log, r.rutaResumenes, r.resumenes)
}

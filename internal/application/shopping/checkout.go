package shopping

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// EstadoCheckout es el estado final de una pasada por el motor de checkout.
type EstadoCheckout int

const (
	// EstadoComprometido la venta se confirmó, se descontó stock y se
	// registró en los libros.
	EstadoComprometido EstadoCheckout = iota
	// EstadoCancelado el usuario no confirmó; nada fue mutado ni escrito.
	EstadoCancelado
)

// Confirmador es el colaborador que pide la confirmación final (prompt s/n).
// Cualquier respuesta no afirmativa cancela.
type Confirmador interface {
	Confirmar() bool
}

// ConfirmadorFunc adapta una función a Confirmador.
type ConfirmadorFunc func() bool

// Confirmar implementa Confirmador.
func (f ConfirmadorFunc) Confirmar() bool { return f() }

// Revision es el resumen calculado del carrito al entrar en revisión:
// una línea por entrada con subtotal = cantidad × precio registrado, más
// el total de la venta.
type Revision struct {
	Items []entity.VentaItem
	Total decimal.Decimal
}

// Resultado informa cómo terminó la sesión de checkout.
type Resultado struct {
	Estado EstadoCheckout
	Venta  *entity.Venta // solo con EstadoComprometido
}

// Checkout es el motor de cierre de compra. Es el único punto que muta el
// stock autoritativo a partir de un carrito. No se protege contra ser
// invocado dos veces con el mismo carrito: el llamador debe limpiar la
// sesión después de un commit.
type Checkout struct {
	inventario repository.InventarioRepository
	ventas     repository.VentaRepository
	log        *logger.Logger
}

// NewCheckout construye el motor de checkout.
func NewCheckout(inventario repository.InventarioRepository, ventas repository.VentaRepository, log *logger.Logger) *Checkout {
	return &Checkout{inventario: inventario, ventas: ventas, log: log}
}

// Revisar construye el resumen del carrito. Un carrito vacío devuelve
// ErrCarritoVacio sin entrar en revisión.
func (c *Checkout) Revisar(ses *Sesion) (*Revision, error) {
	if ses.Vacio() {
		return nil, domain.ErrCarritoVacio
	}
	rev := &Revision{}
	for _, item := range ses.Items() {
		subtotal := entity.CalcularSubtotal(item.Cantidad, item.PrecioRegistrado)
		rev.Items = append(rev.Items, entity.VentaItem{
			Categoria:      item.Categoria,
			Producto:       item.Producto,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioRegistrado,
			Subtotal:       subtotal,
		})
	}
	rev.Total = entity.CalcularTotal(rev.Items)
	return rev, nil
}

// Procesar corre la máquina de estados sobre la sesión: revisa el carrito,
// muestra el resumen, pide confirmación y confirma o cancela.
//
// Al confirmar descuenta el stock autoritativo (no el snapshot). Si un
// producto ya no existe en el stock se registra la advertencia y se sigue;
// si el descuento dejaría stock negativo se ajusta a cero con advertencia.
// Luego agrega la venta y su resumen a los libros y persiste todo. Al
// cancelar no se muta ni se escribe nada.
func (c *Checkout) Procesar(ses *Sesion, emailCliente string, mostrarResumen func(*Revision), conf Confirmador) (*Resultado, error) {
	rev, err := c.Revisar(ses)
	if err != nil {
		return nil, err
	}
	if mostrarResumen != nil {
		mostrarResumen(rev)
	}

	if !conf.Confirmar() {
		c.log.Info().Str("cliente", emailCliente).Msg("compra cancelada por el usuario")
		return &Resultado{Estado: EstadoCancelado}, nil
	}

	stock := c.inventario.Stock()
	for _, item := range rev.Items {
		restante, existia, ajustado := stock.Descontar(item.Categoria, item.Producto, item.Cantidad)
		if !existia {
			c.log.Error().
				Str("categoria", item.Categoria).
				Str("producto", item.Producto).
				Msg("producto no encontrado en el stock al actualizar")
			continue
		}
		if ajustado {
			c.log.Warn().
				Str("categoria", item.Categoria).
				Str("producto", item.Producto).
				Int("comprado", item.Cantidad).
				Msg("stock negativo detectado, ajustado a 0")
		}
		c.log.Debug().
			Str("categoria", item.Categoria).
			Str("producto", item.Producto).
			Int("restante", restante).
			Msg("stock descontado")
	}
	// Los fallos de guardado ya quedan registrados por el repositorio; el
	// estado en memoria es el autoritativo para el resto de la sesión.
	_ = c.inventario.GuardarStock()

	venta := entity.Venta{
		ID:           uuid.New().String(),
		ClienteEmail: emailCliente,
		Items:        rev.Items,
		CostoTotal:   rev.Total,
		Fecha:        time.Now(),
	}
	_ = c.ventas.Registrar(venta)

	c.log.Info().
		Str("cliente", emailCliente).
		Str("total", rev.Total.String()).
		Msg("venta procesada correctamente")
	return &Resultado{Estado: EstadoComprometido, Venta: &venta}, nil
}

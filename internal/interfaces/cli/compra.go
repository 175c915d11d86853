package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jhoicas/tienda-cli/internal/application/shopping"
	"github.com/jhoicas/tienda-cli/internal/domain"
)

// realizarCompra corre la sesión de compra completa: browsing por
// categorías y productos sobre el snapshot, carrito, y cierre por el motor
// de checkout. El stock autoritativo solo cambia si el checkout confirma.
func (c *CLI) realizarCompra() {
	ses := shopping.NuevaSesion(c.invRepo.Stock(), c.invRepo.Precios())

	for !c.p.EOF() {
		c.p.Imprimir("\n=============== TIENDA VIRTUAL ===============")
		c.mostrarInventario(ses.Snapshot(), c.invRepo.Precios())

		sel := c.seleccionarCategoria(ses)
		switch sel.Tipo {
		case shopping.SeleccionVolver:
			c.p.Imprimir("\n↩️ Volviendo al menú del cliente...")
			return
		case shopping.SeleccionCancelarTodo:
			c.p.Imprimir("\n↩️ Compra cancelada. Volviendo al menú principal del cliente...")
			return
		case shopping.SeleccionFinalizar:
			c.finalizarCompra(ses)
			if ses.Vacio() {
				if !c.p.ConfirmarSN("¿Desea realizar otra compra o agregar más ítems? (s/n): ") {
					c.p.Imprimir("\n👋 Saliendo del sistema de compras.")
					return
				}
			}
		case shopping.SeleccionCategoria:
			producto := c.seleccionarProducto(ses, sel.Categoria)
			if producto == "" {
				continue
			}
			c.agregarAlCarrito(ses, sel.Categoria, producto)
			c.mostrarCarrito(ses)
			if !c.opcionPostAgregado(ses) {
				return
			}
		}
	}
}

// seleccionarCategoria lista las categorías con stock restante y lee la
// elección. Devuelve la variante correspondiente; sin categorías
// disponibles la compra se cancela entera.
func (c *CLI) seleccionarCategoria(ses *shopping.Sesion) shopping.Seleccion {
	c.p.Imprimir("\n🛒 ¿De qué categoría te gustaría comprar?")

	categorias := ses.CategoriasDisponibles()
	if len(categorias) == 0 {
		c.p.Imprimir("ℹ️ Lo sentimos, no hay productos disponibles en este momento.")
		return shopping.Seleccion{Tipo: shopping.SeleccionCancelarTodo}
	}

	for i, categoria := range categorias {
		c.p.Imprimir("%d) %s", i+1, Titulo(categoria))
	}
	c.p.Imprimir("\n%d) ✅ Finalizar compra y ver carrito", len(categorias)+1)
	c.p.Imprimir("%d) ❌ Cancelar compra y volver al menú", len(categorias)+2)

	for {
		entrada, ok := c.p.PedirConCancelar("\n→ Elegí una opción de categoría (o Enter para cancelar esta selección): ")
		if !ok {
			return shopping.Seleccion{Tipo: shopping.SeleccionVolver}
		}
		opcion, err := strconv.Atoi(entrada)
		if err != nil {
			c.p.Imprimir("⚠️ Entrada inválida. Por favor, ingresá un número.")
			continue
		}
		sel := shopping.InterpretarOpcionCategoria(opcion, categorias)
		if sel.Tipo == shopping.SeleccionInvalida {
			c.p.Imprimir("⚠️ Opción de categoría inválida. Intentá de nuevo.")
			continue
		}
		return sel
	}
}

// seleccionarProducto lista los productos con stock restante de la
// categoría y devuelve la clave elegida; "" significa volver a categorías.
func (c *CLI) seleccionarProducto(ses *shopping.Sesion, categoria string) string {
	c.p.Imprimir("\n 🛒 Productos disponibles en '%s':", Titulo(categoria))

	productos := ses.ProductosDisponibles(categoria)
	if len(productos) == 0 {
		c.p.Imprimir("ℹ️ No quedan productos con stock en la categoría '%s'.", Titulo(categoria))
		return ""
	}

	for i, producto := range productos {
		c.p.Imprimir("  %d) %s (Stock: %d, Precio: %s)",
			i+1, Titulo(producto), ses.Disponible(categoria, producto), Dinero(ses.Precio(categoria, producto)))
	}
	c.p.Imprimir("\n  %d) ↩️ Volver a elegir categoría", len(productos)+1)

	for {
		entrada, ok := c.p.PedirConCancelar("  → Elegí el producto (o Enter para volver a categorías): ")
		if !ok {
			return ""
		}
		opcion, err := strconv.Atoi(entrada)
		if err != nil {
			c.p.Imprimir("⚠️ Entrada inválida. Por favor, ingresá un número.")
			continue
		}
		switch {
		case opcion >= 1 && opcion <= len(productos):
			return productos[opcion-1]
		case opcion == len(productos)+1:
			return ""
		default:
			c.p.Imprimir("⚠️ Opción de producto inválida. Intentá de nuevo.")
		}
	}
}

// agregarAlCarrito pide la cantidad y agrega el producto a la sesión.
// Cero no agrega; Enter cancela la adición; cantidades negativas o por
// encima del disponible se rechazan con reintento, nunca se recortan.
func (c *CLI) agregarAlCarrito(ses *shopping.Sesion, categoria, producto string) {
	disponible := ses.Disponible(categoria, producto)
	if disponible <= 0 {
		c.p.Imprimir("ℹ️ Ya no hay más stock disponible para agregar de '%s' (o ya está todo en tu carrito).", Titulo(producto))
		return
	}

	for {
		entrada, ok := c.p.PedirConCancelar("  → ¿Cuántas unidades querés agregar? (0 para no agregar, Enter para cancelar): ")
		if !ok {
			c.p.Imprimir("ℹ️ Adición de '%s' cancelada.", Titulo(producto))
			c.log.Info().Str("categoria", categoria).Str("producto", producto).Msg("adición al carrito cancelada")
			return
		}
		cantidad, err := strconv.Atoi(entrada)
		if err != nil {
			c.p.Imprimir("⚠️ Ingresaste algo que no es un número.")
			continue
		}
		if cantidad == 0 {
			return
		}
		if err := shopping.ValidarCantidad(cantidad, disponible); err != nil {
			if errors.Is(err, domain.ErrInsufficientStock) {
				c.p.Imprimir("⚠️ No podés agregar más de %d unidades.", disponible)
			} else {
				c.p.Imprimir("⚠️ La cantidad no puede ser negativa.")
			}
			continue
		}
		if err := ses.Agregar(categoria, producto, cantidad); err != nil {
			c.log.Error().Err(err).Str("categoria", categoria).Str("producto", producto).Msg("error al agregar al carrito")
			c.p.Imprimir("❌ Error al agregar '%s' al carrito.", Titulo(producto))
			return
		}
		c.log.Info().Str("categoria", categoria).Str("producto", producto).Int("cantidad", cantidad).Msg("producto agregado al carrito")
		c.p.Imprimir("✅ '%s' (%d uds.) agregado/actualizado en el carrito.", Titulo(producto), cantidad)
		return
	}
}

func (c *CLI) mostrarCarrito(ses *shopping.Sesion) {
	if ses.Vacio() {
		c.p.Imprimir("\n🛒 Tu carrito está vacío.")
		return
	}
	c.p.Imprimir("\n🛒 Carrito Actual:")
	for _, item := range ses.Items() {
		c.p.Imprimir("  - %s (%s): %d uds.", Titulo(item.Producto), Titulo(item.Categoria), item.Cantidad)
	}
	c.p.Imprimir(strings.Repeat("-", 20))
}

// opcionPostAgregado pregunta cómo seguir después de agregar un producto.
// Devuelve false cuando hay que salir del sistema de compras.
func (c *CLI) opcionPostAgregado(ses *shopping.Sesion) bool {
	for !c.p.EOF() {
		switch strings.ToLower(c.p.Pedir("¿Desea (a)gregar otro producto, (f)inalizar compra, o (c)ancelar toda la compra? (a/f/c): ")) {
		case "a":
			return true
		case "f":
			c.finalizarCompra(ses)
			c.p.Imprimir("\n↩️ Volviendo al menú del cliente...")
			return false
		case "c":
			c.p.Imprimir("\n↩️ Compra totalmente cancelada. Volviendo al menú del cliente...")
			return false
		default:
			c.p.Imprimir("⚠️ Opción inválida.")
		}
	}
	return false
}

// finalizarCompra entra en revisión y deja que el motor de checkout
// confirme o cancele. Tras un commit el carrito se limpia acá: el motor no
// se protege contra reprocesar el mismo carrito.
func (c *CLI) finalizarCompra(ses *shopping.Sesion) {
	resultado, err := c.checkout.Procesar(
		ses,
		c.sesion.Email,
		c.mostrarRevision,
		shopping.ConfirmadorFunc(func() bool {
			return c.p.ConfirmarSN("\n¿Confirmás la compra? (s/n): ")
		}),
	)
	if err != nil {
		if errors.Is(err, domain.ErrCarritoVacio) {
			c.p.Imprimir("\nℹ️ Tu carrito está vacío. No se procesó ninguna compra.")
			c.log.Info().Str("cliente", c.sesion.Email).Msg("compra no procesada: carrito vacío")
			return
		}
		c.log.Error().Err(err).Str("cliente", c.sesion.Email).Msg("error durante el proceso de compra")
		c.p.Imprimir("❌ Ocurrió un error al procesar tu compra.")
		return
	}
	if resultado.Estado == shopping.EstadoComprometido {
		ses.Limpiar()
		c.p.Imprimir("\n✅ ¡Gracias por tu compra!")
		return
	}
	c.p.Imprimir("\n❌ Compra cancelada.")
}

func (c *CLI) mostrarRevision(rev *shopping.Revision) {
	c.p.Imprimir("\n📋 --- Resumen Final de tu Carrito ---")
	c.p.Imprimir(strings.Repeat("-", 70))
	c.p.Imprimir("%-35s | %-10s | %-10s | %-10s", "Producto (Categoría)", "Cantidad", "P. Unit.", "Subtotal")
	c.p.Imprimir(strings.Repeat("-", 70))
	for _, item := range rev.Items {
		c.p.Imprimir("- %-25s (%s) | %-10d | %-9s | %-9s",
			Titulo(item.Producto), Titulo(item.Categoria), item.Cantidad,
			Dinero(item.PrecioUnitario), Dinero(item.Subtotal))
	}
	c.p.Imprimir(strings.Repeat("-", 70))
	c.p.Imprimir("%-58s %s", "Costo Total:", Dinero(rev.Total))
	c.p.Imprimir(strings.Repeat("-", 70))
}

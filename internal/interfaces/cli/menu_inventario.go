package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/domain"
)

func (c *CLI) menuInventario() {
	for !c.p.EOF() {
		c.p.Imprimir("\n━━━━━ GESTIÓN DE INVENTARIO ━━━━━")
		c.p.Imprimir("1) Ver inventario completo")
		c.p.Imprimir("2) Agregar categoría")
		c.p.Imprimir("3) Agregar producto")
		c.p.Imprimir("4) Modificar stock de un producto")
		c.p.Imprimir("5) Modificar precio de un producto")
		c.p.Imprimir("6) Eliminar producto")
		c.p.Imprimir("7) Eliminar categoría completa")
		c.p.Imprimir("8) Volver al menú administrador")

		switch c.p.Pedir("\n→ Ingresá el número de la opción: ") {
		case "1":
			c.protegido("ver inventario", func() {
				c.mostrarInventario(c.invRepo.Stock(), c.invRepo.Precios())
			})
		case "2":
			c.protegido("agregar categoría", c.agregarCategoria)
		case "3":
			c.protegido("agregar producto", c.agregarProducto)
		case "4":
			c.protegido("modificar stock", c.modificarStock)
		case "5":
			c.protegido("modificar precio", c.modificarPrecio)
		case "6":
			c.protegido("eliminar producto", c.eliminarProducto)
		case "7":
			c.protegido("eliminar categoría", c.eliminarCategoria)
		case "8":
			c.p.Imprimir("↩️ Volviendo al menú administrador...")
			return
		default:
			c.opcionInvalida()
		}
	}
}

func (c *CLI) agregarCategoria() {
	c.p.Imprimir("\n--- AGREGAR CATEGORÍA ---")
	nombre, ok := c.p.PedirConCancelar("Nombre de la nueva categoría: ")
	if !ok {
		return
	}
	if err := c.inventario.AgregarCategoria(nombre); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			c.p.Imprimir("⚠️ La categoría '%s' ya existe.", Titulo(nombre))
		case errors.Is(err, domain.ErrInvalidInput):
			c.p.Imprimir("⚠️ El nombre de la categoría no puede estar vacío.")
		default:
			c.log.Error().Err(err).Str("categoria", nombre).Msg("error al agregar la categoría")
			c.p.Imprimir("❌ Ocurrió un error al agregar la categoría.")
		}
		return
	}
	c.p.Imprimir("✅ Categoría '%s' agregada.", Titulo(nombre))
}

func (c *CLI) agregarProducto() {
	c.p.Imprimir("\n--- AGREGAR PRODUCTO ---")
	categoria := c.pedirCategoriaExistente()
	if categoria == "" {
		return
	}
	producto, ok := c.p.PedirConCancelar("Nombre del nuevo producto: ")
	if !ok {
		return
	}
	cantidad, ok := c.pedirEntero("Stock inicial: ")
	if !ok {
		return
	}
	precio, ok := c.pedirPrecio("Precio unitario: ")
	if !ok {
		return
	}

	if err := c.inventario.AgregarProducto(categoria, producto, cantidad, precio); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			c.p.Imprimir("⚠️ El producto '%s' ya existe en '%s'. Usá modificar stock/precio.", Titulo(producto), Titulo(categoria))
		case errors.Is(err, domain.ErrInvalidInput):
			c.p.Imprimir("⚠️ El stock y el precio no pueden ser negativos.")
		case errors.Is(err, domain.ErrNotFound):
			c.p.Imprimir("⚠️ La categoría '%s' no existe.", Titulo(categoria))
		default:
			c.log.Error().Err(err).Str("producto", producto).Msg("error al agregar el producto")
			c.p.Imprimir("❌ Ocurrió un error al agregar el producto.")
		}
		return
	}
	c.p.Imprimir("✅ Producto '%s' agregado a '%s' (stock: %d, precio: %s).",
		Titulo(producto), Titulo(categoria), cantidad, Dinero(precio))
}

func (c *CLI) modificarStock() {
	c.p.Imprimir("\n--- MODIFICAR STOCK ---")
	c.mostrarTablaStock(c.invRepo.Stock())

	categoria := c.pedirCategoriaExistente()
	if categoria == "" {
		return
	}
	producto := c.pedirProductoExistente(categoria)
	if producto == "" {
		return
	}
	actual, _ := c.invRepo.Stock().Cantidad(categoria, producto)
	c.p.Imprimir("Stock actual de '%s': %d", Titulo(producto), actual)

	nuevo, ok := c.pedirEntero("Nuevo stock: ")
	if !ok {
		return
	}
	if err := c.inventario.ModificarStock(categoria, producto, nuevo); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.p.Imprimir("⚠️ El stock no puede ser negativo.")
			return
		}
		c.log.Error().Err(err).Str("producto", producto).Msg("error al modificar el stock")
		c.p.Imprimir("❌ Ocurrió un error al modificar el stock.")
		return
	}
	c.p.Imprimir("✅ Stock de '%s' actualizado a %d.", Titulo(producto), nuevo)
}

func (c *CLI) modificarPrecio() {
	c.p.Imprimir("\n--- MODIFICAR PRECIO ---")
	categoria := c.pedirCategoriaExistente()
	if categoria == "" {
		return
	}
	producto := c.pedirProductoExistente(categoria)
	if producto == "" {
		return
	}
	if actual, ok := c.invRepo.Precios().Precio(categoria, producto); ok {
		c.p.Imprimir("Precio actual de '%s': %s", Titulo(producto), Dinero(actual))
	} else {
		c.p.Imprimir("ℹ️ El producto '%s' aún no tiene precio definido.", Titulo(producto))
	}

	nuevo, ok := c.pedirPrecio("Nuevo precio: ")
	if !ok {
		return
	}
	if err := c.inventario.ModificarPrecio(categoria, producto, nuevo); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.p.Imprimir("⚠️ El producto no está en la lista de precios. Volvé a darlo de alta.")
		case errors.Is(err, domain.ErrInvalidInput):
			c.p.Imprimir("⚠️ El precio no puede ser negativo.")
		default:
			c.log.Error().Err(err).Str("producto", producto).Msg("error al modificar el precio")
			c.p.Imprimir("❌ Ocurrió un error al modificar el precio.")
		}
		return
	}
	c.p.Imprimir("✅ Precio de '%s' actualizado a %s.", Titulo(producto), Dinero(nuevo))
}

func (c *CLI) eliminarProducto() {
	c.p.Imprimir("\n--- ELIMINAR PRODUCTO ---")
	categoria := c.pedirCategoriaExistente()
	if categoria == "" {
		return
	}
	producto := c.pedirProductoExistente(categoria)
	if producto == "" {
		return
	}
	if !c.p.ConfirmarSN("⚠️ ¿Confirmás la eliminación de '" + Titulo(producto) + "'? (s/n): ") {
		c.p.Imprimir("↩️ Eliminación cancelada.")
		return
	}

	precioExistia, err := c.inventario.EliminarProducto(categoria, producto)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.p.Imprimir("⚠️ El producto ya no existe en el inventario.")
			return
		}
		c.log.Error().Err(err).Str("producto", producto).Msg("error al eliminar el producto")
		c.p.Imprimir("❌ Ocurrió un error al eliminar el producto.")
		return
	}
	c.p.Imprimir("✅ Producto '%s' eliminado del stock.", Titulo(producto))
	if !precioExistia {
		c.p.Imprimir("ℹ️ El producto no tenía precio definido.")
	}
}

// eliminarCategoria borra la categoría con todos sus productos. Pide la
// confirmación dos veces: es la operación más destructiva del inventario.
func (c *CLI) eliminarCategoria() {
	c.p.Imprimir("\n--- ELIMINAR CATEGORÍA COMPLETA ---")
	categoria := c.pedirCategoriaExistente()
	if categoria == "" {
		return
	}
	cantidadProductos := len(c.invRepo.Stock().Productos(categoria))
	if !c.p.ConfirmarSN("⚠️ Vas a eliminar '" + Titulo(categoria) + "' con todos sus productos. ¿Continuar? (s/n): ") {
		c.p.Imprimir("↩️ Eliminación cancelada.")
		return
	}
	if !c.p.ConfirmarSN("⚠️ Esta acción NO se puede deshacer. ¿Estás completamente seguro/a? (s/n): ") {
		c.p.Imprimir("↩️ Eliminación cancelada.")
		return
	}

	if err := c.inventario.EliminarCategoria(categoria); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.p.Imprimir("⚠️ La categoría ya no existe.")
			return
		}
		c.log.Error().Err(err).Str("categoria", categoria).Msg("error al eliminar la categoría")
		c.p.Imprimir("❌ Ocurrió un error al eliminar la categoría.")
		return
	}
	c.p.Imprimir("✅ Categoría '%s' eliminada (%d productos).", Titulo(categoria), cantidadProductos)
}

// pedirCategoriaExistente muestra las categorías y lee una; devuelve la
// clave en minúsculas o "" si se canceló. La comparación ignora mayúsculas.
func (c *CLI) pedirCategoriaExistente() string {
	categorias := c.invRepo.Stock().Categorias()
	if len(categorias) == 0 {
		c.p.Imprimir("ℹ️ No hay categorías en el inventario. Agregá una primero.")
		return ""
	}
	c.p.Imprimir("Categorías existentes: %s", strings.Join(titulos(categorias), ", "))

	for {
		entrada, ok := c.p.PedirConCancelar("Nombre de la categoría: ")
		if !ok {
			return ""
		}
		clave := strings.ToLower(strings.TrimSpace(entrada))
		if c.invRepo.Stock().ExisteCategoria(clave) {
			return clave
		}
		c.p.Imprimir("⚠️ La categoría '%s' no existe. Intentá de nuevo.", entrada)
	}
}

// pedirProductoExistente muestra los productos de la categoría y lee uno;
// devuelve la clave en minúsculas o "" si se canceló.
func (c *CLI) pedirProductoExistente(categoria string) string {
	productos := c.invRepo.Stock().Productos(categoria)
	if len(productos) == 0 {
		c.p.Imprimir("ℹ️ La categoría '%s' no tiene productos.", Titulo(categoria))
		return ""
	}
	c.p.Imprimir("Productos en '%s': %s", Titulo(categoria), strings.Join(titulos(productos), ", "))

	for {
		entrada, ok := c.p.PedirConCancelar("Nombre del producto: ")
		if !ok {
			return ""
		}
		clave := strings.ToLower(strings.TrimSpace(entrada))
		if _, ok := c.invRepo.Stock().Cantidad(categoria, clave); ok {
			return clave
		}
		c.p.Imprimir("⚠️ El producto '%s' no existe en '%s'. Intentá de nuevo.", entrada, Titulo(categoria))
	}
}

func (c *CLI) pedirEntero(mensaje string) (int, bool) {
	for {
		entrada, ok := c.p.PedirConCancelar(mensaje)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(entrada)
		if err != nil {
			c.p.Imprimir("⚠️ Ingresá un número entero.")
			continue
		}
		return n, true
	}
}

// pedirPrecio lee un monto decimal; acepta coma como separador decimal.
func (c *CLI) pedirPrecio(mensaje string) (decimal.Decimal, bool) {
	for {
		entrada, ok := c.p.PedirConCancelar(mensaje)
		if !ok {
			return decimal.Zero, false
		}
		precio, err := decimal.NewFromString(strings.ReplaceAll(entrada, ",", "."))
		if err != nil {
			c.p.Imprimir("⚠️ Ingresá un monto válido (ej: 1500.50).")
			continue
		}
		return precio, true
	}
}

func titulos(claves []string) []string {
	resultado := make([]string, len(claves))
	for i, clave := range claves {
		resultado[i] = Titulo(clave)
	}
	return resultado
}

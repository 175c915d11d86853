package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/tienda-cli/internal/domain/entity"
)

// Titulo capitaliza una clave de inventario para mostrarla (las claves se
// guardan en minúsculas).
func Titulo(s string) string {
	return cases.Title(language.Spanish).String(s)
}

// Dinero formatea un monto con dos decimales.
func Dinero(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func (c *CLI) mostrarInventario(stock entity.Stock, precios entity.Precios) {
	c.p.Imprimir("\n📦 Inventario Actual:")
	c.p.Imprimir(strings.Repeat("-", 70))

	categorias := stock.Categorias()
	if len(categorias) == 0 {
		c.p.Imprimir("El inventario de stock está vacío.")
		c.p.Imprimir(strings.Repeat("-", 70))
		return
	}

	for _, categoria := range categorias {
		c.p.Imprimir("📁 Categoría: %s", Titulo(categoria))
		c.p.Imprimir("    %-25s | %-12s | %-10s", "Producto", "Stock", "Precio")
		c.p.Imprimir("    " + strings.Repeat("-", 50))
		for _, producto := range stock.Productos(categoria) {
			cantidad, _ := stock.Cantidad(categoria, producto)
			stockStr := fmt.Sprintf("%d", cantidad)
			if cantidad <= 0 {
				stockStr = "Sin stock"
			}
			precioStr := "No definido"
			if precio, ok := precios.Precio(categoria, producto); ok {
				precioStr = Dinero(precio)
			}
			c.p.Imprimir("    - %-24s | %-12s | %-10s", Titulo(producto), stockStr, precioStr)
		}
		c.p.Imprimir(strings.Repeat("-", 40))
	}
	c.p.Imprimir(strings.Repeat("-", 70))
}

// mostrarTablaStock imprime el inventario sin precios, para usar antes de
// editar el stock.
func (c *CLI) mostrarTablaStock(stock entity.Stock) {
	c.p.Imprimir("\n📋 Inventario (solo Stock):")
	c.p.Imprimir(strings.Repeat("-", 70))

	categorias := stock.Categorias()
	if len(categorias) == 0 {
		c.p.Imprimir("El inventario está vacío.")
		c.p.Imprimir(strings.Repeat("-", 70))
		return
	}

	for _, categoria := range categorias {
		productos := stock.Productos(categoria)
		if len(productos) == 0 {
			continue
		}
		c.p.Imprimir("📁 Categoría: %s", Titulo(categoria))
		c.p.Imprimir("    %-25s | %-12s", "Producto", "Stock")
		c.p.Imprimir("    " + strings.Repeat("-", 40))
		for _, producto := range productos {
			cantidad, _ := stock.Cantidad(categoria, producto)
			stockStr := fmt.Sprintf("%d", cantidad)
			if cantidad <= 0 {
				stockStr = "Sin stock"
			}
			c.p.Imprimir("    - %-24s | %-12s", Titulo(producto), stockStr)
		}
		c.p.Imprimir(strings.Repeat("-", 40))
	}
	c.p.Imprimir(strings.Repeat("-", 70))
}

func (c *CLI) mostrarVenta(numero int, venta entity.Venta, conCliente bool) {
	c.p.Imprimir(strings.Repeat("-", 70))
	if conCliente {
		c.p.Imprimir("| Venta #%d | Cliente: %s |", numero, venta.ClienteEmail)
	} else {
		c.p.Imprimir("| Compra #%d |", numero)
	}
	c.p.Imprimir("Items Comprados:")
	if len(venta.Items) == 0 {
		c.p.Imprimir("  (No hay detalle de items)")
	} else {
		c.p.Imprimir("  %-30s | %-5s | %-10s | %-10s", "Producto (Categoría)", "Cant.", "P.Unit", "Subtotal")
		c.p.Imprimir("  " + strings.Repeat("-", 60))
		for _, item := range venta.Items {
			prodCat := fmt.Sprintf("%s (%s)", Titulo(item.Producto), Titulo(item.Categoria))
			c.p.Imprimir("  - %-29s | %-5d | %-10s | %-10s",
				prodCat, item.Cantidad, Dinero(item.PrecioUnitario), Dinero(item.Subtotal))
		}
	}
	c.p.Imprimir("Costo Total Venta: %s", Dinero(venta.CostoTotal))
}

func ordenadoPorEmail(usuarios []entity.Usuario) []entity.Usuario {
	sort.Slice(usuarios, func(i, j int) bool { return usuarios[i].Email < usuarios[j].Email })
	return usuarios
}

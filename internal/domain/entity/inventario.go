package entity

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Stock es el mapeo categoría -> producto -> unidades disponibles.
// Las claves se guardan en minúsculas; los accesores pliegan mayúsculas
// para que la búsqueda sea insensible al caso.
type Stock map[string]map[string]int

// Precios es el mapeo paralelo categoría -> producto -> precio unitario.
// Puede haber productos con stock sin precio definido (se tolera y se
// muestra como "No definido").
type Precios map[string]map[string]decimal.Decimal

// clave normaliza una clave de categoría o producto para búsqueda.
func clave(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Cantidad devuelve las unidades de un producto y si el producto existe.
func (s Stock) Cantidad(categoria, producto string) (int, bool) {
	productos, ok := s[clave(categoria)]
	if !ok {
		return 0, false
	}
	cantidad, ok := productos[clave(producto)]
	return cantidad, ok
}

// Ajustar fija el stock de un producto existente o lo crea.
// La categoría se crea si no existe.
func (s Stock) Ajustar(categoria, producto string, cantidad int) {
	cat := clave(categoria)
	if s[cat] == nil {
		s[cat] = map[string]int{}
	}
	s[cat][clave(producto)] = cantidad
}

// Descontar resta cantidad unidades de un producto. Si el resultado sería
// negativo lo deja en 0. Devuelve el stock resultante, si el producto
// existía y si hubo que ajustar a cero.
func (s Stock) Descontar(categoria, producto string, cantidad int) (resultado int, existia, ajustado bool) {
	cat, prod := clave(categoria), clave(producto)
	productos, ok := s[cat]
	if !ok {
		return 0, false, false
	}
	actual, ok := productos[prod]
	if !ok {
		return 0, false, false
	}
	resultado = actual - cantidad
	if resultado < 0 {
		resultado = 0
		ajustado = true
	}
	productos[prod] = resultado
	return resultado, true, ajustado
}

// ExisteCategoria indica si la categoría existe (insensible al caso).
func (s Stock) ExisteCategoria(categoria string) bool {
	_, ok := s[clave(categoria)]
	return ok
}

// AgregarCategoria crea una categoría vacía. Devuelve false si ya existía.
func (s Stock) AgregarCategoria(categoria string) bool {
	cat := clave(categoria)
	if _, ok := s[cat]; ok {
		return false
	}
	s[cat] = map[string]int{}
	return true
}

// EliminarCategoria borra la categoría con todos sus productos.
func (s Stock) EliminarCategoria(categoria string) bool {
	cat := clave(categoria)
	if _, ok := s[cat]; !ok {
		return false
	}
	delete(s, cat)
	return true
}

// EliminarProducto borra un producto de su categoría.
func (s Stock) EliminarProducto(categoria, producto string) bool {
	cat, prod := clave(categoria), clave(producto)
	productos, ok := s[cat]
	if !ok {
		return false
	}
	if _, ok := productos[prod]; !ok {
		return false
	}
	delete(productos, prod)
	return true
}

// Categorias devuelve todas las claves de categoría en orden lexicográfico.
func (s Stock) Categorias() []string {
	return clavesOrdenadas(s)
}

// CategoriasConStock devuelve, en orden lexicográfico, las categorías que
// tienen al menos un producto con stock positivo.
func (s Stock) CategoriasConStock() []string {
	var categorias []string
	for cat, productos := range s {
		for _, cantidad := range productos {
			if cantidad > 0 {
				categorias = append(categorias, cat)
				break
			}
		}
	}
	sort.Strings(categorias)
	return categorias
}

// Productos devuelve las claves de producto de una categoría, ordenadas.
func (s Stock) Productos(categoria string) []string {
	return clavesOrdenadas(s[clave(categoria)])
}

// ProductosConStock devuelve, ordenados, los productos de la categoría con
// stock positivo.
func (s Stock) ProductosConStock(categoria string) []string {
	var productos []string
	for prod, cantidad := range s[clave(categoria)] {
		if cantidad > 0 {
			productos = append(productos, prod)
		}
	}
	sort.Strings(productos)
	return productos
}

// Clone devuelve una copia profunda del stock. Es la base del snapshot de
// trabajo de una sesión de compra: las reservas del carrito se descuentan
// de la copia y el stock autoritativo queda intacto hasta el commit.
func (s Stock) Clone() Stock {
	copia := make(Stock, len(s))
	for cat, productos := range s {
		copia[cat] = make(map[string]int, len(productos))
		for prod, cantidad := range productos {
			copia[cat][prod] = cantidad
		}
	}
	return copia
}

// Precio devuelve el precio unitario de un producto y si está definido.
func (p Precios) Precio(categoria, producto string) (decimal.Decimal, bool) {
	productos, ok := p[clave(categoria)]
	if !ok {
		return decimal.Zero, false
	}
	precio, ok := productos[clave(producto)]
	return precio, ok
}

// Definir fija el precio de un producto, creando la categoría si hace falta.
func (p Precios) Definir(categoria, producto string, precio decimal.Decimal) {
	cat := clave(categoria)
	if p[cat] == nil {
		p[cat] = map[string]decimal.Decimal{}
	}
	p[cat][clave(producto)] = precio
}

// ExisteCategoria indica si la categoría existe en la lista de precios.
func (p Precios) ExisteCategoria(categoria string) bool {
	_, ok := p[clave(categoria)]
	return ok
}

// AgregarCategoria crea una categoría vacía de precios. Devuelve false si ya existía.
func (p Precios) AgregarCategoria(categoria string) bool {
	cat := clave(categoria)
	if _, ok := p[cat]; ok {
		return false
	}
	p[cat] = map[string]decimal.Decimal{}
	return true
}

// EliminarCategoria borra la categoría con todos sus precios.
func (p Precios) EliminarCategoria(categoria string) bool {
	cat := clave(categoria)
	if _, ok := p[cat]; !ok {
		return false
	}
	delete(p, cat)
	return true
}

// EliminarProducto borra el precio de un producto.
func (p Precios) EliminarProducto(categoria, producto string) bool {
	cat, prod := clave(categoria), clave(producto)
	productos, ok := p[cat]
	if !ok {
		return false
	}
	if _, ok := productos[prod]; !ok {
		return false
	}
	delete(productos, prod)
	return true
}

func clavesOrdenadas[V any](m map[string]V) []string {
	claves := make([]string, 0, len(m))
	for k := range m {
		claves = append(claves, k)
	}
	sort.Strings(claves)
	return claves
}

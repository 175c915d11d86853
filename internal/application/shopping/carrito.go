package shopping

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
)

// ItemCarrito es una entrada del carrito, identificada por la clave
// "categoria:producto". PrecioRegistrado es el precio leído de la lista al
// momento de agregar; un cambio de precio posterior no afecta al carrito.
type ItemCarrito struct {
	Categoria        string
	Producto         string
	Cantidad         int
	PrecioRegistrado decimal.Decimal
}

// Clave devuelve la clave categoría:producto de la entrada.
func (i ItemCarrito) Clave() string {
	return i.Categoria + ":" + i.Producto
}

// Sesion es el estado de una sesión de compra de un cliente. Trabaja sobre
// un snapshot profundo del stock tomado al iniciarla: las reservas del
// carrito se descuentan del snapshot y el stock autoritativo no se toca
// hasta que el checkout confirma.
type Sesion struct {
	carrito  map[string]ItemCarrito
	snapshot entity.Stock
	precios  entity.Precios
}

// NuevaSesion toma el snapshot de trabajo del stock y arranca con el
// carrito vacío. El carrito nunca se persiste.
func NuevaSesion(stock entity.Stock, precios entity.Precios) *Sesion {
	return &Sesion{
		carrito:  map[string]ItemCarrito{},
		snapshot: stock.Clone(),
		precios:  precios,
	}
}

// Disponible devuelve las unidades restantes en el snapshot, ya netas de
// lo reservado en el carrito.
func (s *Sesion) Disponible(categoria, producto string) int {
	cantidad, _ := s.snapshot.Cantidad(categoria, producto)
	return cantidad
}

// Snapshot expone el stock de trabajo de la sesión (para listados).
func (s *Sesion) Snapshot() entity.Stock { return s.snapshot }

// Precio devuelve el precio de lista vigente para un producto (0 si no
// está definido).
func (s *Sesion) Precio(categoria, producto string) decimal.Decimal {
	precio, _ := s.precios.Precio(categoria, producto)
	return precio
}

// CategoriasDisponibles lista, en orden lexicográfico, las categorías con
// al menos un producto con stock restante en el snapshot.
func (s *Sesion) CategoriasDisponibles() []string {
	return s.snapshot.CategoriasConStock()
}

// ProductosDisponibles lista, en orden lexicográfico, los productos de la
// categoría con stock restante en el snapshot.
func (s *Sesion) ProductosDisponibles(categoria string) []string {
	return s.snapshot.ProductosConStock(categoria)
}

// ValidarCantidad revisa una cantidad solicitada contra el disponible sin
// mutar nada: negativa es inválida y mayor al disponible es rechazada (no
// se recorta en silencio).
func ValidarCantidad(cantidad, disponible int) error {
	if cantidad < 0 {
		return domain.ErrInvalidInput
	}
	if cantidad > disponible {
		return domain.ErrInsufficientStock
	}
	return nil
}

// Agregar suma cantidad unidades del producto al carrito: valida contra el
// snapshot, fusiona con una entrada previa de la misma clave, registra el
// precio de lista del momento y descuenta el snapshot. Cantidades menores
// o iguales a cero no agregan nada.
func (s *Sesion) Agregar(categoria, producto string, cantidad int) error {
	categoria = strings.ToLower(strings.TrimSpace(categoria))
	producto = strings.ToLower(strings.TrimSpace(producto))
	if cantidad <= 0 {
		return domain.ErrInvalidInput
	}
	disponible, ok := s.snapshot.Cantidad(categoria, producto)
	if !ok {
		return domain.ErrNotFound
	}
	if cantidad > disponible {
		return domain.ErrInsufficientStock
	}

	item := ItemCarrito{Categoria: categoria, Producto: producto}
	if previo, ok := s.carrito[item.Clave()]; ok {
		item.Cantidad = previo.Cantidad
	}
	item.Cantidad += cantidad
	item.PrecioRegistrado = s.Precio(categoria, producto)
	s.carrito[item.Clave()] = item

	s.snapshot.Descontar(categoria, producto, cantidad)
	return nil
}

// Items devuelve las entradas del carrito ordenadas por clave.
func (s *Sesion) Items() []ItemCarrito {
	items := make([]ItemCarrito, 0, len(s.carrito))
	for _, item := range s.carrito {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Clave() < items[j].Clave() })
	return items
}

// Vacio indica si el carrito no tiene entradas.
func (s *Sesion) Vacio() bool { return len(s.carrito) == 0 }

// Limpiar descarta todas las entradas del carrito. El llamador debe
// invocarlo tras un commit; el motor de checkout no lo hace por sí mismo.
func (s *Sesion) Limpiar() {
	s.carrito = map[string]ItemCarrito{}
}

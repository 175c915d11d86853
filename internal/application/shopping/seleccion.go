package shopping

// TipoSeleccion clasifica el resultado de elegir una opción en el listado
// de categorías de la tienda.
type TipoSeleccion int

const (
	// SeleccionInvalida la opción no corresponde a ninguna entrada del listado.
	SeleccionInvalida TipoSeleccion = iota
	// SeleccionCategoria se eligió una categoría para seguir comprando.
	SeleccionCategoria
	// SeleccionFinalizar se pidió cerrar la compra y revisar el carrito.
	SeleccionFinalizar
	// SeleccionCancelarTodo se pidió cancelar toda la compra.
	SeleccionCancelarTodo
	// SeleccionVolver se canceló la selección para volver al menú anterior.
	SeleccionVolver
)

// Seleccion es la variante etiquetada que reemplaza a los centinelas de
// texto: Categoria solo es significativa cuando Tipo es SeleccionCategoria.
type Seleccion struct {
	Tipo      TipoSeleccion
	Categoria string
}

// InterpretarOpcionCategoria mapea la opción numérica sobre el listado:
// 1..len elige esa categoría, len+1 finaliza la compra, len+2 cancela todo
// y cualquier otro valor es inválido.
func InterpretarOpcionCategoria(opcion int, categorias []string) Seleccion {
	switch {
	case opcion >= 1 && opcion <= len(categorias):
		return Seleccion{Tipo: SeleccionCategoria, Categoria: categorias[opcion-1]}
	case opcion == len(categorias)+1:
		return Seleccion{Tipo: SeleccionFinalizar}
	case opcion == len(categorias)+2:
		return Seleccion{Tipo: SeleccionCancelarTodo}
	default:
		return Seleccion{Tipo: SeleccionInvalida}
	}
}

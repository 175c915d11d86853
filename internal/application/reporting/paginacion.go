package reporting

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
)

// Avisos de navegación: el visor los muestra y mantiene la página actual.
var (
	ErrUltimaPagina  = errors.New("ya estás en la última página")
	ErrPrimeraPagina = errors.New("ya estás en la primera página")
)

// LimitesPagina devuelve el rango [inicio, fin) de una página 1-based.
// Está definida también para páginas fuera de rango o no positivas; el
// llamador debe controlar un inicio negativo.
func LimitesPagina(pagina, porPagina int) (inicio, fin int) {
	inicio = (pagina - 1) * porPagina
	return inicio, inicio + porPagina
}

// MaxPaginas devuelve ceil(total / porPagina); 0 si no hay elementos.
func MaxPaginas(total, porPagina int) int {
	if total <= 0 || porPagina <= 0 {
		return 0
	}
	return (total + porPagina - 1) / porPagina
}

// Pagina recorta el historial a la página pedida, con límites protegidos.
func Pagina(ventas []entity.Venta, pagina, porPagina int) []entity.Venta {
	inicio, fin := LimitesPagina(pagina, porPagina)
	if inicio < 0 {
		inicio = 0
	}
	if inicio > len(ventas) {
		inicio = len(ventas)
	}
	if fin > len(ventas) {
		fin = len(ventas)
	}
	return ventas[inicio:fin]
}

// TipoNavegacion clasifica la entrada del visor de historial.
type TipoNavegacion int

const (
	// NavInvalida la entrada no es ninguna acción conocida.
	NavInvalida TipoNavegacion = iota
	// NavSiguiente avanzar una página.
	NavSiguiente
	// NavAnterior retroceder una página.
	NavAnterior
	// NavSalir cerrar el visor.
	NavSalir
	// NavPagina ir a un número de página explícito.
	NavPagina
)

// Navegacion es la acción parseada; Pagina solo es significativa con NavPagina.
type Navegacion struct {
	Tipo   TipoNavegacion
	Pagina int
}

// InterpretarNavegacion parsea la entrada del visor: s (siguiente),
// a (anterior), q (salir) o un número de página.
func InterpretarNavegacion(entrada string) Navegacion {
	entrada = strings.ToLower(strings.TrimSpace(entrada))
	switch entrada {
	case "s":
		return Navegacion{Tipo: NavSiguiente}
	case "a":
		return Navegacion{Tipo: NavAnterior}
	case "q":
		return Navegacion{Tipo: NavSalir}
	}
	if n, err := strconv.Atoi(entrada); err == nil {
		return Navegacion{Tipo: NavPagina, Pagina: n}
	}
	return Navegacion{Tipo: NavInvalida}
}

// Avanzar aplica la acción de navegación y devuelve la página resultante.
// Siguiente y anterior se frenan en los bordes con su aviso; un número de
// página fuera de 1..MaxPaginas se rechaza con ErrPaginaInvalida en lugar
// de recortarse.
func Avanzar(accion Navegacion, actual, total, porPagina int) (int, error) {
	switch accion.Tipo {
	case NavSiguiente:
		if actual*porPagina < total {
			return actual + 1, nil
		}
		return actual, ErrUltimaPagina
	case NavAnterior:
		if actual > 1 {
			return actual - 1, nil
		}
		return actual, ErrPrimeraPagina
	case NavPagina:
		if accion.Pagina >= 1 && accion.Pagina <= MaxPaginas(total, porPagina) {
			return accion.Pagina, nil
		}
		return actual, domain.ErrPaginaInvalida
	default:
		return actual, domain.ErrInvalidInput
	}
}

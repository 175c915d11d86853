package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrEmailInvalido      = errors.New("formato de email inválido")
	ErrContrasenaInvalida = errors.New("la contraseña no cumple la política")
	ErrCredenciales       = errors.New("credenciales incorrectas")
	ErrUsuarioInactivo    = errors.New("el usuario está inactivo")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrCarritoVacio       = errors.New("el carrito está vacío")
	ErrPaginaInvalida     = errors.New("número de página inválido")
	ErrObjetivoInvalido   = errors.New("el objetivo debe ser un número positivo")
)

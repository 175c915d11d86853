package repository

import "github.com/jhoicas/tienda-cli/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// La implementación mantiene el documento completo en memoria y lo
// reescribe entero tras cada mutación.
type UsuarioRepository interface {
	PorEmail(email string) (*entity.Usuario, error)
	PorRol(rol string, activos bool) []entity.Usuario
	BuscarPorNombre(rol, fragmento string) []entity.Usuario
	Guardar(usuario *entity.Usuario) error
	Flush() error
}

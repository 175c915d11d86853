package entity

// Roles válidos para Usuario.
const (
	RolCliente       = "cliente"
	RolAdministrador = "administrador"
)

// Usuario representa una cuenta del sistema. El documento usuarios.json es un
// mapa email -> datos; Email se completa desde la clave al cargar y no se
// repite dentro del valor persistido.
type Usuario struct {
	Email          string
	Nombre         string
	ContrasenaHash string // hash bcrypt, nunca la contraseña plana
	Rol            string // cliente, administrador
	Activo         bool   // false = eliminado lógicamente
}

// EsAdministrador indica si el usuario tiene rol administrador.
func (u *Usuario) EsAdministrador() bool {
	return u.Rol == RolAdministrador
}

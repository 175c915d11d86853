package jsonstore

import (
	"sort"
	"strings"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// usuarioDoc es la forma persistida de un usuario dentro de usuarios.json
// (el email es la clave del mapa y no se repite en el valor).
type usuarioDoc struct {
	Nombre     string `json:"nombre"`
	Contrasena string `json:"contraseña"`
	Rol        string `json:"rol"`
	Activo     bool   `json:"activo"`
}

// UsuarioRepo implementación del puerto UsuarioRepository sobre usuarios.json.
type UsuarioRepo struct {
	log      *logger.Logger
	ruta     string
	usuarios map[string]usuarioDoc
}

// NewUsuarioRepository carga usuarios.json (creándolo vacío si no existe)
// y construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(log *logger.Logger, ruta string) *UsuarioRepo {
	return &UsuarioRepo{
		log:      log,
		ruta:     ruta,
		usuarios: Cargar(log, ruta, map[string]usuarioDoc{}),
	}
}

// PorEmail busca un usuario por email (insensible al caso).
// Devuelve domain.ErrUserNotFound si no existe.
func (r *UsuarioRepo) PorEmail(email string) (*entity.Usuario, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	doc, ok := r.usuarios[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u := aEntidad(email, doc)
	return &u, nil
}

// PorRol devuelve los usuarios de un rol, filtrando por estado activo,
// ordenados por email para salida estable.
func (r *UsuarioRepo) PorRol(rol string, activos bool) []entity.Usuario {
	var lista []entity.Usuario
	for email, doc := range r.usuarios {
		if doc.Rol == rol && doc.Activo == activos {
			lista = append(lista, aEntidad(email, doc))
		}
	}
	sort.Slice(lista, func(i, j int) bool { return lista[i].Email < lista[j].Email })
	return lista
}

// BuscarPorNombre devuelve los usuarios activos de un rol cuyo nombre
// contiene el fragmento (insensible al caso), ordenados por email.
func (r *UsuarioRepo) BuscarPorNombre(rol, fragmento string) []entity.Usuario {
	fragmento = strings.ToLower(strings.TrimSpace(fragmento))
	if fragmento == "" {
		return nil
	}
	var lista []entity.Usuario
	for email, doc := range r.usuarios {
		if doc.Rol == rol && doc.Activo && strings.Contains(strings.ToLower(doc.Nombre), fragmento) {
			lista = append(lista, aEntidad(email, doc))
		}
	}
	sort.Slice(lista, func(i, j int) bool { return lista[i].Email < lista[j].Email })
	return lista
}

// Guardar inserta o actualiza el usuario y reescribe el documento completo.
// Un fallo de E/S queda registrado; la copia en memoria ya está actualizada.
func (r *UsuarioRepo) Guardar(usuario *entity.Usuario) error {
	email := strings.ToLower(strings.TrimSpace(usuario.Email))
	r.usuarios[email] = usuarioDoc{
		Nombre:     usuario.Nombre,
		Contrasena: usuario.ContrasenaHash,
		Rol:        usuario.Rol,
		Activo:     usuario.Activo,
	}
	return Guardar(r.log, r.ruta, r.usuarios)
}

// Flush reescribe el documento completo con el estado en memoria.
func (r *UsuarioRepo) Flush() error {
	return Guardar(r.log, r.ruta, r.usuarios)
}

func aEntidad(email string, doc usuarioDoc) entity.Usuario {
	return entity.Usuario{
		Email:          email,
		Nombre:         doc.Nombre,
		ContrasenaHash: doc.Contrasena,
		Rol:            doc.Rol,
		Activo:         doc.Activo,
	}
}

package usecase

import (
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
)

// UsuarioUseCase casos de uso de gestión de usuarios para el administrador.
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// ListarPorRol devuelve los usuarios activos de un rol.
func (uc *UsuarioUseCase) ListarPorRol(rol string) []entity.Usuario {
	return uc.repo.PorRol(rol, true)
}

// ListarInactivosPorRol devuelve los usuarios eliminados lógicamente de un rol.
func (uc *UsuarioUseCase) ListarInactivosPorRol(rol string) []entity.Usuario {
	return uc.repo.PorRol(rol, false)
}

// BuscarPorNombre devuelve los usuarios activos de un rol cuyo nombre
// contiene el fragmento.
func (uc *UsuarioUseCase) BuscarPorNombre(rol, fragmento string) []entity.Usuario {
	return uc.repo.BuscarPorNombre(rol, fragmento)
}

// Desactivar marca al usuario como inactivo (eliminación lógica) y persiste.
// Devuelve ErrConflict si ya estaba inactivo.
func (uc *UsuarioUseCase) Desactivar(email string) error {
	usuario, err := uc.repo.PorEmail(email)
	if err != nil {
		return err
	}
	if !usuario.Activo {
		return domain.ErrConflict
	}
	usuario.Activo = false
	return uc.repo.Guardar(usuario)
}

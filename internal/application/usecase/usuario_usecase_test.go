package usecase

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/jsonstore"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

func usuariosDePrueba(t *testing.T) (*UsuarioUseCase, *jsonstore.UsuarioRepo) {
	t.Helper()
	repo := jsonstore.NewUsuarioRepository(logger.Nop(), filepath.Join(t.TempDir(), "usuarios.json"))
	require.NoError(t, repo.Guardar(&entity.Usuario{Email: "ana@test.com", Nombre: "Ana", Rol: entity.RolCliente, Activo: true}))
	require.NoError(t, repo.Guardar(&entity.Usuario{Email: "juan@test.com", Nombre: "Juan", Rol: entity.RolCliente, Activo: true}))
	require.NoError(t, repo.Guardar(&entity.Usuario{Email: "admin@test.com", Nombre: "Admin", Rol: entity.RolAdministrador, Activo: true}))
	return NewUsuarioUseCase(repo), repo
}

func TestUsuario_ListarPorRol(t *testing.T) {
	uc, _ := usuariosDePrueba(t)

	clientes := uc.ListarPorRol(entity.RolCliente)
	require.Len(t, clientes, 2)
	assert.Equal(t, "ana@test.com", clientes[0].Email)

	admins := uc.ListarPorRol(entity.RolAdministrador)
	require.Len(t, admins, 1)

	assert.Empty(t, uc.ListarInactivosPorRol(entity.RolCliente))
}

func TestUsuario_Desactivar(t *testing.T) {
	uc, repo := usuariosDePrueba(t)

	require.NoError(t, uc.Desactivar("ana@test.com"))

	usuario, err := repo.PorEmail("ana@test.com")
	require.NoError(t, err)
	assert.False(t, usuario.Activo)

	inactivos := uc.ListarInactivosPorRol(entity.RolCliente)
	require.Len(t, inactivos, 1)
	assert.Equal(t, "ana@test.com", inactivos[0].Email)
}

func TestUsuario_DesactivarYaInactivo(t *testing.T) {
	uc, _ := usuariosDePrueba(t)
	require.NoError(t, uc.Desactivar("ana@test.com"))

	assert.ErrorIs(t, uc.Desactivar("ana@test.com"), domain.ErrConflict)
}

func TestUsuario_DesactivarInexistente(t *testing.T) {
	uc, _ := usuariosDePrueba(t)

	assert.ErrorIs(t, uc.Desactivar("nadie@test.com"), domain.ErrUserNotFound)
}

func TestUsuario_BuscarPorNombre(t *testing.T) {
	uc, _ := usuariosDePrueba(t)

	encontrados := uc.BuscarPorNombre(entity.RolCliente, "an")
	require.Len(t, encontrados, 2, "Ana y Juan contienen 'an'")

	require.NoError(t, uc.Desactivar("ana@test.com"))
	encontrados = uc.BuscarPorNombre(entity.RolCliente, "ana")
	assert.Empty(t, encontrados, "los desactivados no aparecen")
}

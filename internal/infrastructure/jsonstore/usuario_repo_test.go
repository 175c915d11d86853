package jsonstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

func repoDeUsuarios(t *testing.T) (*UsuarioRepo, string) {
	t.Helper()
	ruta := filepath.Join(t.TempDir(), "usuarios.json")
	return NewUsuarioRepository(logger.Nop(), ruta), ruta
}

func TestUsuarioRepo_GuardarYPorEmail(t *testing.T) {
	repo, ruta := repoDeUsuarios(t)

	require.NoError(t, repo.Guardar(&entity.Usuario{
		Email:          "ana@test.com",
		Nombre:         "Ana García",
		ContrasenaHash: "hash",
		Rol:            entity.RolCliente,
		Activo:         true,
	}))

	usuario, err := repo.PorEmail("ANA@test.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana García", usuario.Nombre)
	assert.Equal(t, entity.RolCliente, usuario.Rol)

	// El documento reescrito sobrevive a una recarga.
	recargado := NewUsuarioRepository(logger.Nop(), ruta)
	usuario, err = recargado.PorEmail("ana@test.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana García", usuario.Nombre)
	assert.True(t, usuario.Activo)
}

func TestUsuarioRepo_PorEmailInexistente(t *testing.T) {
	repo, _ := repoDeUsuarios(t)

	_, err := repo.PorEmail("nadie@test.com")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUsuarioRepo_PorRol(t *testing.T) {
	repo, _ := repoDeUsuarios(t)
	require.NoError(t, repo.Guardar(&entity.Usuario{Email: "b@test.com", Nombre: "B", Rol: entity.RolCliente, Activo: true}))
	require.NoError(t, repo.Guardar(&entity.Usuario{Email: "a@test.com", Nombre: "A", Rol: entity.RolCliente, Activo: true}))
	require.NoError(t, repo.Guardar(&entity.Usuario{Email: "c@test.com", Nombre: "C", Rol: entity.RolCliente, Activo: false}))
	require.NoError(t, repo.Guardar(&entity.Usuario{Email: "admin@test.com", Nombre: "Admin", Rol: entity.RolAdministrador, Activo: true}))

	activos := repo.PorRol(entity.RolCliente, true)
	require.Len(t, activos, 2)
	assert.Equal(t, "a@test.com", activos[0].Email, "ordenados por email")
	assert.Equal(t, "b@test.com", activos[1].Email)

	inactivos := repo.PorRol(entity.RolCliente, false)
	require.Len(t, inactivos, 1)
	assert.Equal(t, "c@test.com", inactivos[0].Email)
}

func TestUsuarioRepo_BuscarPorNombre(t *testing.T) {
	repo, _ := repoDeUsuarios(t)
	require.NoError(t, repo.Guardar(&entity.Usuario{Email: "ana@test.com", Nombre: "Ana García", Rol: entity.RolCliente, Activo: true}))
	require.NoError(t, repo.Guardar(&entity.Usuario{Email: "juan@test.com", Nombre: "Juan Pérez", Rol: entity.RolCliente, Activo: true}))
	require.NoError(t, repo.Guardar(&entity.Usuario{Email: "baja@test.com", Nombre: "Ana Baja", Rol: entity.RolCliente, Activo: false}))

	encontrados := repo.BuscarPorNombre(entity.RolCliente, "ana")
	require.Len(t, encontrados, 1, "los inactivos no aparecen en la búsqueda")
	assert.Equal(t, "ana@test.com", encontrados[0].Email)

	assert.Empty(t, repo.BuscarPorNombre(entity.RolCliente, ""))
	assert.Empty(t, repo.BuscarPorNombre(entity.RolAdministrador, "ana"))
}

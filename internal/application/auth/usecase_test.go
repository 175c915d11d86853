package auth

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/jsonstore"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

func authDePrueba(t *testing.T) *AuthUseCase {
	t.Helper()
	repo := jsonstore.NewUsuarioRepository(logger.Nop(), filepath.Join(t.TempDir(), "usuarios.json"))
	return NewAuthUseCase(repo)
}

func TestValidarEmail(t *testing.T) {
	assert.NoError(t, ValidarEmail("ana@test.com"))
	assert.NoError(t, ValidarEmail("ana.garcia+compras@mi-tienda.com.ar"))
	assert.ErrorIs(t, ValidarEmail("sin-arroba.com"), domain.ErrEmailInvalido)
	assert.ErrorIs(t, ValidarEmail("ana@sindominio"), domain.ErrEmailInvalido)
	assert.ErrorIs(t, ValidarEmail(""), domain.ErrEmailInvalido)
}

func TestValidarContrasena(t *testing.T) {
	assert.NoError(t, ValidarContrasena("Segura1!"))
	assert.ErrorIs(t, ValidarContrasena("Ab1!"), domain.ErrContrasenaInvalida, "muy corta")
	assert.ErrorIs(t, ValidarContrasena("segura1!"), domain.ErrContrasenaInvalida, "sin mayúscula")
	assert.ErrorIs(t, ValidarContrasena("Segura!!"), domain.ErrContrasenaInvalida, "sin dígito")
	assert.ErrorIs(t, ValidarContrasena("Segura11"), domain.ErrContrasenaInvalida, "sin caracter especial")
}

func TestRegistrar(t *testing.T) {
	auth := authDePrueba(t)

	usuario, err := auth.Registrar("Ana@Test.com", "Ana García", "Segura1!")
	require.NoError(t, err)

	assert.Equal(t, "ana@test.com", usuario.Email, "el email se normaliza a minúsculas")
	assert.Equal(t, entity.RolCliente, usuario.Rol)
	assert.True(t, usuario.Activo)

	// La contraseña se persiste hasheada, nunca en claro.
	assert.NotEqual(t, "Segura1!", usuario.ContrasenaHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usuario.ContrasenaHash), []byte("Segura1!")))
}

func TestRegistrar_EmailDuplicado(t *testing.T) {
	auth := authDePrueba(t)
	_, err := auth.Registrar("ana@test.com", "Ana", "Segura1!")
	require.NoError(t, err)

	_, err = auth.Registrar("ANA@test.com", "Otra Ana", "Segura1!")

	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegistrar_DatosInvalidos(t *testing.T) {
	auth := authDePrueba(t)

	_, err := auth.Registrar("no-es-email", "Ana", "Segura1!")
	assert.ErrorIs(t, err, domain.ErrEmailInvalido)

	_, err = auth.Registrar("ana@test.com", "   ", "Segura1!")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = auth.Registrar("ana@test.com", "Ana", "debil")
	assert.ErrorIs(t, err, domain.ErrContrasenaInvalida)
}

func TestCrearAdministrador(t *testing.T) {
	auth := authDePrueba(t)

	admin, err := auth.CrearAdministrador("admin@test.com", "Admin", "Segura1!")
	require.NoError(t, err)

	assert.Equal(t, entity.RolAdministrador, admin.Rol)
	assert.True(t, admin.EsAdministrador())
}

func TestLogin(t *testing.T) {
	auth := authDePrueba(t)
	_, err := auth.Registrar("ana@test.com", "Ana", "Segura1!")
	require.NoError(t, err)

	t.Run("credenciales correctas", func(t *testing.T) {
		usuario, err := auth.Login("ana@test.com", "Segura1!")
		require.NoError(t, err)
		assert.Equal(t, "Ana", usuario.Nombre)
	})

	t.Run("contraseña incorrecta", func(t *testing.T) {
		_, err := auth.Login("ana@test.com", "Incorrecta1!")
		assert.ErrorIs(t, err, domain.ErrCredenciales)
		assert.True(t, EsCredencialInvalida(err))
	})

	t.Run("email no registrado", func(t *testing.T) {
		_, err := auth.Login("nadie@test.com", "Segura1!")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.True(t, EsCredencialInvalida(err))
	})
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	repo := jsonstore.NewUsuarioRepository(logger.Nop(), filepath.Join(t.TempDir(), "usuarios.json"))
	auth := NewAuthUseCase(repo)

	usuario, err := auth.Registrar("ana@test.com", "Ana", "Segura1!")
	require.NoError(t, err)
	usuario.Activo = false
	require.NoError(t, repo.Guardar(usuario))

	_, err = auth.Login("ana@test.com", "Segura1!")

	assert.ErrorIs(t, err, domain.ErrUsuarioInactivo)
	assert.False(t, EsCredencialInvalida(err), "cuenta inactiva no es credencial inválida")
}

func TestCambiarContrasena(t *testing.T) {
	auth := authDePrueba(t)
	_, err := auth.Registrar("ana@test.com", "Ana", "Segura1!")
	require.NoError(t, err)

	require.NoError(t, auth.CambiarContrasena("ana@test.com", "Nueva22?"))

	_, err = auth.Login("ana@test.com", "Segura1!")
	assert.ErrorIs(t, err, domain.ErrCredenciales)

	_, err = auth.Login("ana@test.com", "Nueva22?")
	assert.NoError(t, err)
}

func TestCambiarContrasena_Invalida(t *testing.T) {
	auth := authDePrueba(t)
	_, err := auth.Registrar("ana@test.com", "Ana", "Segura1!")
	require.NoError(t, err)

	assert.ErrorIs(t, auth.CambiarContrasena("ana@test.com", "debil"), domain.ErrContrasenaInvalida)
}

func TestActualizarNombre(t *testing.T) {
	auth := authDePrueba(t)
	_, err := auth.Registrar("ana@test.com", "Ana", "Segura1!")
	require.NoError(t, err)

	require.NoError(t, auth.ActualizarNombre("ana@test.com", "Ana María García"))

	usuario, err := auth.Login("ana@test.com", "Segura1!")
	require.NoError(t, err)
	assert.Equal(t, "Ana María García", usuario.Nombre)

	assert.ErrorIs(t, auth.ActualizarNombre("ana@test.com", "  "), domain.ErrInvalidInput)
}

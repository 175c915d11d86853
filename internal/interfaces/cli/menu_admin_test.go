package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-cli/internal/application/auth"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/jsonstore"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

func cliDePrueba(t *testing.T, entrada string) (*CLI, *auth.AuthUseCase) {
	t.Helper()
	repo := jsonstore.NewUsuarioRepository(logger.Nop(), filepath.Join(t.TempDir(), "usuarios.json"))
	authUC := auth.NewAuthUseCase(repo)
	c := New(NewPrompter(strings.NewReader(entrada), &bytes.Buffer{}), Deps{
		Log:  logger.Nop(),
		Auth: authUC,
	})
	return c, authUC
}

func TestActualizarNombreDe_RefrescaSesionPropia(t *testing.T) {
	c, authUC := cliDePrueba(t, "Nuevo Nombre\n")
	admin, err := authUC.CrearAdministrador("admin@test.com", "Admin", "Segura1!")
	require.NoError(t, err)
	c.sesion = admin

	c.actualizarNombreDe("admin@test.com")

	assert.Equal(t, "Nuevo Nombre", c.sesion.Nombre,
		"renombrarse desde la gestión de administradores debe verse en la sesión activa")
}

func TestActualizarNombreDe_OtroUsuarioNoTocaLaSesion(t *testing.T) {
	c, authUC := cliDePrueba(t, "Ana Renombrada\n")
	admin, err := authUC.CrearAdministrador("admin@test.com", "Admin", "Segura1!")
	require.NoError(t, err)
	_, err = authUC.Registrar("ana@test.com", "Ana", "Segura1!")
	require.NoError(t, err)
	c.sesion = admin

	c.actualizarNombreDe("ana@test.com")

	assert.Equal(t, "Admin", c.sesion.Nombre)

	usuario, err := authUC.Login("ana@test.com", "Segura1!")
	require.NoError(t, err)
	assert.Equal(t, "Ana Renombrada", usuario.Nombre)
}

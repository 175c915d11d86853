package auth

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
)

var patronEmail = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const caracteresEspeciales = "@$!%*?&()"

// ValidarEmail verifica el formato del email. No consulta unicidad.
func ValidarEmail(email string) error {
	if !patronEmail.MatchString(strings.TrimSpace(email)) {
		return domain.ErrEmailInvalido
	}
	return nil
}

// ValidarContrasena aplica la política: mínimo 6 caracteres, al menos una
// mayúscula, un dígito y un caracter especial (@$!%*?&()).
func ValidarContrasena(contrasena string) error {
	if len(contrasena) < 6 {
		return domain.ErrContrasenaInvalida
	}
	var mayuscula, digito, especial bool
	for _, c := range contrasena {
		switch {
		case unicode.IsUpper(c):
			mayuscula = true
		case unicode.IsDigit(c):
			digito = true
		case strings.ContainsRune(caracteresEspeciales, c):
			especial = true
		}
	}
	if !mayuscula || !digito || !especial {
		return domain.ErrContrasenaInvalida
	}
	return nil
}

// AuthUseCase casos de uso de autenticación y cuenta: registro, login,
// cambio de contraseña y de nombre.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarios repository.UsuarioRepository) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios}
}

// ExisteEmail indica si ya hay un usuario registrado con ese email.
func (uc *AuthUseCase) ExisteEmail(email string) bool {
	_, err := uc.usuarios.PorEmail(email)
	return err == nil
}

// Registrar crea un usuario con rol cliente: valida email y política de
// contraseña, hashea con bcrypt y persiste. Devuelve ErrEmailAlreadyExists
// si el email ya está registrado.
func (uc *AuthUseCase) Registrar(email, nombre, contrasena string) (*entity.Usuario, error) {
	return uc.crear(email, nombre, contrasena, entity.RolCliente)
}

// CrearAdministrador crea un usuario con rol administrador, con las mismas
// validaciones que el registro de clientes.
func (uc *AuthUseCase) CrearAdministrador(email, nombre, contrasena string) (*entity.Usuario, error) {
	return uc.crear(email, nombre, contrasena, entity.RolAdministrador)
}

func (uc *AuthUseCase) crear(email, nombre, contrasena, rol string) (*entity.Usuario, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := ValidarEmail(email); err != nil {
		return nil, err
	}
	if uc.ExisteEmail(email) {
		return nil, domain.ErrEmailAlreadyExists
	}
	if nombre = strings.TrimSpace(nombre); nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := ValidarContrasena(contrasena); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		Email:          email,
		Nombre:         nombre,
		ContrasenaHash: string(hash),
		Rol:            rol,
		Activo:         true,
	}
	if err := uc.usuarios.Guardar(usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// Login verifica email y contraseña. Devuelve ErrUserNotFound si el email
// no está registrado, ErrCredenciales si la contraseña no coincide y
// ErrUsuarioInactivo si la cuenta fue eliminada lógicamente.
func (uc *AuthUseCase) Login(email, contrasena string) (*entity.Usuario, error) {
	usuario, err := uc.usuarios.PorEmail(email)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(usuario.ContrasenaHash), []byte(contrasena)) != nil {
		return nil, domain.ErrCredenciales
	}
	if !usuario.Activo {
		return nil, domain.ErrUsuarioInactivo
	}
	return usuario, nil
}

// CambiarContrasena valida la nueva contraseña, la hashea y persiste.
func (uc *AuthUseCase) CambiarContrasena(email, nueva string) error {
	usuario, err := uc.usuarios.PorEmail(email)
	if err != nil {
		return err
	}
	if err := ValidarContrasena(nueva); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(nueva), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	usuario.ContrasenaHash = string(hash)
	return uc.usuarios.Guardar(usuario)
}

// ActualizarNombre cambia el nombre del usuario y persiste.
func (uc *AuthUseCase) ActualizarNombre(email, nombre string) error {
	if nombre = strings.TrimSpace(nombre); nombre == "" {
		return domain.ErrInvalidInput
	}
	usuario, err := uc.usuarios.PorEmail(email)
	if err != nil {
		return err
	}
	usuario.Nombre = nombre
	return uc.usuarios.Guardar(usuario)
}

// EsCredencialInvalida agrupa los errores de login que se reportan al
// usuario como credenciales incorrectas.
func EsCredencialInvalida(err error) bool {
	return errors.Is(err, domain.ErrCredenciales) || errors.Is(err, domain.ErrUserNotFound)
}

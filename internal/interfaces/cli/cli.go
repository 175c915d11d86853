// Package cli implementa la interfaz de consola: menús numerados sobre
// stdin/stdout, con la convención de que una entrada vacía cancela la
// operación en curso. Ningún error interno termina un bucle de menú.
package cli

import (
	"errors"
	"strings"

	"github.com/jhoicas/tienda-cli/internal/application/auth"
	"github.com/jhoicas/tienda-cli/internal/application/shopping"
	"github.com/jhoicas/tienda-cli/internal/application/usecase"
	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
	"github.com/jhoicas/tienda-cli/internal/domain/repository"
	"github.com/jhoicas/tienda-cli/pkg/config"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// Deps agrupa los colaboradores del CLI.
type Deps struct {
	Config     *config.Config
	Log        *logger.Logger
	Auth       *auth.AuthUseCase
	Usuarios   *usecase.UsuarioUseCase
	Inventario *usecase.InventarioUseCase
	InvRepo    repository.InventarioRepository
	Ventas     repository.VentaRepository
	Checkout   *shopping.Checkout
}

// CLI es el bucle de menús de la aplicación. Mantiene la sesión activa
// (nil cuando nadie inició sesión).
type CLI struct {
	cfg        *config.Config
	log        *logger.Logger
	p          *Prompter
	auth       *auth.AuthUseCase
	usuarios   *usecase.UsuarioUseCase
	inventario *usecase.InventarioUseCase
	invRepo    repository.InventarioRepository
	ventas     repository.VentaRepository
	checkout   *shopping.Checkout
	sesion     *entity.Usuario
}

// New construye el CLI.
func New(p *Prompter, deps Deps) *CLI {
	return &CLI{
		cfg:        deps.Config,
		log:        deps.Log,
		p:          p,
		auth:       deps.Auth,
		usuarios:   deps.Usuarios,
		inventario: deps.Inventario,
		invRepo:    deps.InvRepo,
		ventas:     deps.Ventas,
		checkout:   deps.Checkout,
	}
}

// protegido ejecuta una acción de menú recuperándose de cualquier pánico:
// se registra y se convierte en un mensaje genérico, el bucle sigue vivo.
func (c *CLI) protegido(nombre string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panico", r).Str("accion", nombre).Msg("error inesperado en acción de menú")
			c.p.Imprimir("❌ Hubo un error inesperado. Por favor, intentá de nuevo.")
		}
	}()
	fn()
}

// Run corre el menú principal hasta que el usuario elige salir.
func (c *CLI) Run() {
	for !c.p.EOF() {
		c.p.Imprimir("\n━━━━━ MENÚ PRINCIPAL ━━━━━")
		if c.sesion != nil {
			c.p.Imprimir("Sesión activa: %s (%s)", c.sesion.Nombre, c.sesion.Rol)
			if c.sesion.EsAdministrador() {
				c.p.Imprimir("1) Ir al Menú Administrador")
			} else {
				c.p.Imprimir("1) Ir al Menú Cliente")
			}
			c.p.Imprimir("2) Cerrar sesión")
			c.p.Imprimir("3) Salir de la aplicación")
		} else {
			c.p.Imprimir("1) Registrarse")
			c.p.Imprimir("2) Iniciar sesión")
			c.p.Imprimir("3) Salir de la aplicación")
		}

		opcion := c.p.Pedir("\n→ Ingresá el número de la opción: ")

		if c.sesion != nil {
			switch opcion {
			case "1":
				if c.sesion.EsAdministrador() {
					c.protegido("menú administrador", c.menuAdministrador)
				} else {
					c.protegido("menú cliente", c.menuCliente)
				}
			case "2":
				c.cerrarSesion()
			case "3":
				c.p.Imprimir("👋 ¡Gracias por usar la aplicación! ¡Hasta luego!")
				return
			default:
				c.opcionInvalida()
			}
			continue
		}

		switch opcion {
		case "1":
			c.protegido("registro", c.registrarse)
		case "2":
			c.protegido("inicio de sesión", c.iniciarSesion)
		case "3":
			c.p.Imprimir("👋 ¡Gracias por usar la aplicación! ¡Hasta luego!")
			return
		default:
			c.opcionInvalida()
		}
	}
}

func (c *CLI) opcionInvalida() {
	if c.p.EOF() {
		return
	}
	c.p.Imprimir("⚠️ Esa no es una opción válida. Intentá de nuevo.")
}

// registrarse pide email, nombre y contraseña (con confirmación) y crea la
// cuenta con rol cliente. Cada paso puede cancelarse con Enter.
func (c *CLI) registrarse() {
	c.p.Imprimir("\n--- Registrarse ---")
	c.p.Imprimir("(Podés presionar Enter en cualquier momento para cancelar)")

	email := c.pedirEmailNuevo()
	if email == "" {
		c.log.Info().Msg("registro cancelado al ingresar el email")
		return
	}
	nombre, ok := c.p.PedirConCancelar("Ingresá tu nombre completo: ")
	if !ok {
		c.log.Info().Str("email", email).Msg("registro cancelado al ingresar el nombre")
		return
	}
	contrasena := c.pedirContrasenaConfirmada()
	if contrasena == "" {
		c.log.Info().Str("email", email).Msg("registro cancelado al ingresar la contraseña")
		return
	}

	usuario, err := c.auth.Registrar(email, nombre, contrasena)
	if err != nil {
		c.log.Error().Err(err).Str("email", email).Msg("error durante el registro")
		c.p.Imprimir("❌ Hubo un error al registrarse. Por favor, intentá de nuevo.")
		return
	}
	c.sesion = usuario

	c.p.Imprimir("\n✅ ¡Registro exitoso para %s como CLIENTE!", usuario.Nombre)
	c.p.Imprimir("✅ ¡Bienvenido/a, %s!", usuario.Nombre)
	c.p.Imprimir("Rol: %s", Titulo(usuario.Rol))
	c.log.Info().Str("email", email).Msg("usuario registrado, redirigido al menú cliente")

	c.menuCliente()
}

func (c *CLI) pedirEmailNuevo() string {
	for {
		entrada, ok := c.p.PedirConCancelar("Ingresá tu email: ")
		if !ok {
			return ""
		}
		email := strings.ToLower(entrada)
		if c.auth.ExisteEmail(email) {
			c.p.Imprimir("⚠️ Ya existe un usuario registrado con ese email. Intentá con otro.")
			continue
		}
		if err := auth.ValidarEmail(email); err != nil {
			c.p.Imprimir("⚠️ El formato del email es inválido. Intentá de nuevo.\n")
			continue
		}
		return email
	}
}

func (c *CLI) pedirContrasenaConfirmada() string {
	for {
		contrasena, ok := c.p.PedirConCancelar("Ingresá una contraseña (mín. 6 caracteres, 1 mayúscula, 1 número, 1 caracter especial): ")
		if !ok {
			return ""
		}
		if err := auth.ValidarContrasena(contrasena); err != nil {
			c.p.Imprimir("⚠️ La contraseña debe tener al menos 6 caracteres, una mayúscula, un número y un caracter especial.\n")
			continue
		}
		confirmacion, ok := c.p.PedirConCancelar("Confirmá la contraseña: ")
		if !ok {
			return ""
		}
		if contrasena == confirmacion {
			return contrasena
		}
		c.p.Imprimir("⚠️ Las contraseñas no coinciden. Intentá nuevamente.")
	}
}

// iniciarSesion pide email registrado y contraseña, y enruta al menú según
// el rol del usuario.
func (c *CLI) iniciarSesion() {
	c.p.Imprimir("\n--- Iniciar Sesión ---")
	c.p.Imprimir("(Podés presionar Enter en cualquier momento para cancelar)")

	var email string
	for {
		entrada, ok := c.p.PedirConCancelar("Ingresá tu email: ")
		if !ok {
			c.log.Info().Msg("inicio de sesión cancelado al ingresar el email")
			return
		}
		email = strings.ToLower(entrada)
		if c.auth.ExisteEmail(email) {
			break
		}
		c.p.Imprimir("⚠️ El email no está registrado. Volvé a intentarlo o registrate.")
	}

	for {
		contrasena, ok := c.p.PedirConCancelar("Ingresá tu contraseña: ")
		if !ok {
			c.log.Info().Str("email", email).Msg("inicio de sesión cancelado al ingresar la contraseña")
			return
		}
		usuario, err := c.auth.Login(email, contrasena)
		switch {
		case err == nil:
			c.sesion = usuario
			c.log.Info().Str("email", email).Str("rol", usuario.Rol).Msg("inicio de sesión exitoso")
			c.p.Imprimir("")
			c.p.Imprimir("✅ ¡Bienvenido/a, %s!", usuario.Nombre)
			c.p.Imprimir("Rol: %s", Titulo(usuario.Rol))
			if usuario.EsAdministrador() {
				c.menuAdministrador()
			} else {
				c.menuCliente()
			}
			return
		case errors.Is(err, domain.ErrUsuarioInactivo):
			c.p.Imprimir("❌ La cuenta está inactiva. Contactá a un administrador.")
			return
		case auth.EsCredencialInvalida(err):
			c.p.Imprimir("⚠️ Contraseña incorrecta. Volvé a intentarlo.")
		default:
			c.log.Error().Err(err).Str("email", email).Msg("error durante el inicio de sesión")
			c.p.Imprimir("❌ Hubo un error al iniciar sesión. Por favor, intentá de nuevo.")
			return
		}
	}
}

func (c *CLI) cerrarSesion() {
	if c.sesion == nil {
		c.p.Imprimir("\nℹ️ No hay una sesión activa para cerrar.")
		c.log.Info().Msg("se intentó cerrar sesión sin sesión activa")
		return
	}
	c.p.Imprimir("\n🔒 Sesión cerrada para %s.", c.sesion.Nombre)
	c.log.Info().Str("email", c.sesion.Email).Msg("sesión cerrada")
	c.sesion = nil
}

package cli

import (
	"errors"

	"github.com/jhoicas/tienda-cli/internal/application/auth"
	"github.com/jhoicas/tienda-cli/internal/domain"
)

func (c *CLI) menuCliente() {
	for !c.p.EOF() {
		c.p.Imprimir("\n━━━━━ MENÚ CLIENTE ━━━━━")
		c.p.Imprimir("Bienvenido/a %s", c.sesion.Nombre)
		c.p.Imprimir("1) Ver productos")
		c.p.Imprimir("2) Realizar compra")
		c.p.Imprimir("3) Ver mis compras (historial)")
		c.p.Imprimir("4) Administrar cuenta")
		c.p.Imprimir("5) Cerrar sesión")

		switch c.p.Pedir("\n→ Ingresá el número de la opción: ") {
		case "1":
			c.protegido("ver productos", func() {
				c.mostrarInventario(c.invRepo.Stock(), c.invRepo.Precios())
			})
		case "2":
			c.protegido("realizar compra", c.realizarCompra)
		case "3":
			c.protegido("historial de compras", c.verHistorialCliente)
		case "4":
			c.protegido("administrar cuenta", c.cuentaCliente)
		case "5":
			c.cerrarSesion()
			return
		default:
			c.opcionInvalida()
		}
	}
}

// cuentaCliente es el submenú de gestión de la propia cuenta.
func (c *CLI) cuentaCliente() {
	for !c.p.EOF() {
		c.p.Imprimir("\n--- GESTIÓN DE CUENTA (%s) ---", c.sesion.Nombre)
		c.p.Imprimir("1. Cambiar contraseña")
		c.p.Imprimir("2. Actualizar nombre")
		c.p.Imprimir("3. Volver al menú principal")

		switch c.p.Pedir("Seleccione una opción: ") {
		case "1":
			c.cambiarContrasena(c.sesion.Email)
		case "2":
			c.actualizarNombre()
		case "3":
			c.p.Imprimir("↩️ Volviendo al menú principal...")
			return
		default:
			c.p.Imprimir("⚠️ Opción inválida. Intente nuevamente.")
		}
	}
}

func (c *CLI) cambiarContrasena(email string) {
	c.p.Imprimir("\n--- CAMBIAR CONTRASEÑA ---")
	for {
		nueva, ok := c.p.PedirConCancelar("Nueva contraseña (mín. 6 caracteres, 1 mayúscula, 1 número, 1 caracter especial): ")
		if !ok {
			c.log.Info().Str("email", email).Msg("cambio de contraseña cancelado")
			return
		}
		if err := auth.ValidarContrasena(nueva); err != nil {
			c.p.Imprimir("❌ La contraseña debe tener al menos 6 caracteres, una mayúscula, un número y un caracter especial.")
			continue
		}
		confirmacion := c.p.Pedir("Confirmar nueva contraseña: ")
		if nueva != confirmacion {
			c.p.Imprimir("❌ Las contraseñas no coinciden")
			continue
		}
		if err := c.auth.CambiarContrasena(email, nueva); err != nil {
			c.log.Error().Err(err).Str("email", email).Msg("error al cambiar la contraseña")
			c.p.Imprimir("❌ Ocurrió un error al actualizar la contraseña.")
			return
		}
		c.p.Imprimir("✅ Contraseña actualizada exitosamente")
		c.log.Info().Str("email", email).Msg("contraseña actualizada")
		return
	}
}

func (c *CLI) actualizarNombre() {
	c.p.Imprimir("\n--- ACTUALIZAR NOMBRE ---")
	nombre, ok := c.p.PedirConCancelar("Nuevo nombre completo: ")
	if !ok {
		c.log.Info().Str("email", c.sesion.Email).Msg("actualización de nombre cancelada")
		return
	}
	if err := c.auth.ActualizarNombre(c.sesion.Email, nombre); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.p.Imprimir("⚠️ El nombre no puede estar vacío.")
			return
		}
		c.log.Error().Err(err).Str("email", c.sesion.Email).Msg("error al actualizar el nombre")
		c.p.Imprimir("❌ Ocurrió un error al actualizar el nombre.")
		return
	}
	c.sesion.Nombre = nombre
	c.p.Imprimir("✅ Nombre actualizado a: %s", nombre)
	c.log.Info().Str("email", c.sesion.Email).Str("nombre", nombre).Msg("nombre actualizado")
}

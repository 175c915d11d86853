package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jhoicas/tienda-cli/internal/domain"
	"github.com/jhoicas/tienda-cli/internal/domain/entity"
)

func (c *CLI) menuAdministrador() {
	for !c.p.EOF() {
		c.p.Imprimir("\n━━━━━ MENÚ ADMINISTRADOR ━━━━━")
		c.p.Imprimir("Bienvenido/a %s", c.sesion.Nombre)
		c.p.Imprimir(" 1) Ver clientes registrados")
		c.p.Imprimir(" 2) Ver administradores registrados")
		c.p.Imprimir(" 3) Gestionar clientes")
		c.p.Imprimir(" 4) Gestionar administradores")
		c.p.Imprimir(" 5) Crear nuevo administrador")
		c.p.Imprimir(" 6) Ver clientes inactivos")
		c.p.Imprimir(" 7) Ver administradores inactivos")
		c.p.Imprimir(" 8) Gestionar inventario")
		c.p.Imprimir(" 9) Ver historial de ventas")
		c.p.Imprimir("10) Consultar objetivo de ganancias")
		c.p.Imprimir("11) Cerrar sesión")

		switch c.p.Pedir("\n→ Ingresá el número de la opción: ") {
		case "1":
			c.protegido("ver clientes", func() {
				c.listarUsuarios("CLIENTES REGISTRADOS", c.usuarios.ListarPorRol(entity.RolCliente))
			})
		case "2":
			c.protegido("ver administradores", func() {
				c.listarUsuarios("ADMINISTRADORES REGISTRADOS", c.usuarios.ListarPorRol(entity.RolAdministrador))
			})
		case "3":
			c.protegido("gestionar clientes", func() { c.gestionarUsuarios(entity.RolCliente) })
		case "4":
			c.protegido("gestionar administradores", func() { c.gestionarUsuarios(entity.RolAdministrador) })
		case "5":
			c.protegido("crear administrador", c.crearAdministrador)
		case "6":
			c.protegido("ver clientes inactivos", func() {
				c.listarUsuarios("CLIENTES INACTIVOS", c.usuarios.ListarInactivosPorRol(entity.RolCliente))
			})
		case "7":
			c.protegido("ver administradores inactivos", func() {
				c.listarUsuarios("ADMINISTRADORES INACTIVOS", c.usuarios.ListarInactivosPorRol(entity.RolAdministrador))
			})
		case "8":
			c.protegido("gestionar inventario", c.menuInventario)
		case "9":
			c.protegido("historial de ventas", c.verHistorialVentasAdmin)
		case "10":
			c.protegido("consultar objetivo", c.consultarObjetivo)
		case "11":
			c.cerrarSesion()
			return
		default:
			c.opcionInvalida()
		}
	}
}

func (c *CLI) listarUsuarios(titulo string, usuarios []entity.Usuario) {
	c.p.Imprimir("\n--- %s ---", titulo)
	if len(usuarios) == 0 {
		c.p.Imprimir("ℹ️ No hay usuarios para mostrar.")
		return
	}
	c.p.Imprimir("%-35s | %-25s | %s", "Email", "Nombre", "Estado")
	c.p.Imprimir(strings.Repeat("-", 70))
	for _, u := range ordenadoPorEmail(usuarios) {
		estado := "Activo"
		if !u.Activo {
			estado = "Inactivo"
		}
		c.p.Imprimir("%-35s | %-25s | %s", u.Email, u.Nombre, estado)
	}
	c.p.Imprimir(strings.Repeat("-", 70))
	c.p.Imprimir("Total: %d", len(usuarios))
}

// gestionarUsuarios busca usuarios activos de un rol por fragmento de
// nombre, deja elegir uno y ofrece acciones sobre la cuenta.
func (c *CLI) gestionarUsuarios(rol string) {
	c.p.Imprimir("\n--- GESTIONAR USUARIOS: %s ---", strings.ToUpper(rol))

	fragmento, ok := c.p.PedirConCancelar("Ingresá parte del nombre a buscar: ")
	if !ok {
		return
	}
	encontrados := c.usuarios.BuscarPorNombre(rol, fragmento)
	if len(encontrados) == 0 {
		c.p.Imprimir("ℹ️ No se encontraron usuarios activos con ese nombre.")
		return
	}

	c.p.Imprimir("\nUsuarios encontrados:")
	for i, u := range encontrados {
		c.p.Imprimir("%d) %s (%s)", i+1, u.Nombre, u.Email)
	}

	var elegido entity.Usuario
	for {
		entrada, ok := c.p.PedirConCancelar("→ Elegí el número de usuario: ")
		if !ok {
			return
		}
		n, err := strconv.Atoi(entrada)
		if err != nil || n < 1 || n > len(encontrados) {
			c.p.Imprimir("⚠️ Número fuera de rango. Intentá de nuevo.")
			continue
		}
		elegido = encontrados[n-1]
		break
	}

	c.accionesSobreUsuario(elegido)
}

func (c *CLI) accionesSobreUsuario(usuario entity.Usuario) {
	for !c.p.EOF() {
		c.p.Imprimir("\n--- %s (%s) ---", usuario.Nombre, usuario.Email)
		c.p.Imprimir("1. Cambiar contraseña")
		c.p.Imprimir("2. Actualizar nombre")
		c.p.Imprimir("3. Desactivar cuenta (eliminación lógica)")
		c.p.Imprimir("4. Volver")

		switch c.p.Pedir("Seleccione una opción: ") {
		case "1":
			c.cambiarContrasena(usuario.Email)
		case "2":
			c.actualizarNombreDe(usuario.Email)
		case "3":
			c.desactivarUsuario(usuario)
			return
		case "4":
			return
		default:
			c.p.Imprimir("⚠️ Opción inválida. Intente nuevamente.")
		}
	}
}

func (c *CLI) actualizarNombreDe(email string) {
	nombre, ok := c.p.PedirConCancelar("Nuevo nombre completo: ")
	if !ok {
		return
	}
	if err := c.auth.ActualizarNombre(email, nombre); err != nil {
		c.log.Error().Err(err).Str("email", email).Msg("error al actualizar el nombre del usuario")
		c.p.Imprimir("❌ Ocurrió un error al actualizar el nombre.")
		return
	}
	if c.sesion != nil && c.sesion.Email == email {
		c.sesion.Nombre = nombre
	}
	c.p.Imprimir("✅ Nombre actualizado a: %s", nombre)
	c.log.Info().Str("email", email).Str("nombre", nombre).Msg("nombre de usuario actualizado por administrador")
}

// desactivarUsuario pide confirmación antes de la baja lógica. Un
// administrador puede desactivar su propia cuenta; en ese caso la sesión
// se cierra.
func (c *CLI) desactivarUsuario(usuario entity.Usuario) {
	if !c.p.ConfirmarSN("⚠️ ¿Confirmás la desactivación de la cuenta de " + usuario.Nombre + "? (s/n): ") {
		c.p.Imprimir("↩️ Desactivación cancelada.")
		return
	}
	if err := c.usuarios.Desactivar(usuario.Email); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			c.p.Imprimir("ℹ️ La cuenta ya estaba inactiva.")
			return
		}
		c.log.Error().Err(err).Str("email", usuario.Email).Msg("error al desactivar la cuenta")
		c.p.Imprimir("❌ Ocurrió un error al desactivar la cuenta.")
		return
	}
	c.p.Imprimir("✅ Cuenta de %s desactivada.", usuario.Nombre)
	c.log.Info().Str("email", usuario.Email).Msg("cuenta desactivada")
	if c.sesion != nil && c.sesion.Email == usuario.Email {
		c.cerrarSesion()
	}
}

// crearAdministrador da de alta una cuenta con rol administrador, con las
// mismas validaciones que el registro de clientes.
func (c *CLI) crearAdministrador() {
	c.p.Imprimir("\n--- CREAR NUEVO ADMINISTRADOR ---")
	c.p.Imprimir("(Podés presionar Enter en cualquier momento para cancelar)")

	email := c.pedirEmailNuevo()
	if email == "" {
		return
	}
	nombre, ok := c.p.PedirConCancelar("Ingresá el nombre completo: ")
	if !ok {
		return
	}
	contrasena := c.pedirContrasenaConfirmada()
	if contrasena == "" {
		return
	}

	admin, err := c.auth.CrearAdministrador(email, nombre, contrasena)
	if err != nil {
		c.log.Error().Err(err).Str("email", email).Msg("error al crear el administrador")
		c.p.Imprimir("❌ Hubo un error al crear el administrador.")
		return
	}
	c.p.Imprimir("✅ Administrador %s (%s) creado exitosamente.", admin.Nombre, admin.Email)
	c.log.Info().Str("email", admin.Email).Msg("administrador creado")
}

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter centraliza la interacción por consola: impresión y lectura de
// líneas con la convención de cancelación (entrada vacía cancela).
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

// NewPrompter construye un prompter sobre los streams dados.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Imprimir escribe una línea formateada.
func (p *Prompter) Imprimir(formato string, args ...any) {
	fmt.Fprintf(p.out, formato+"\n", args...)
}

// EOF indica si la entrada se agotó; los menús deben cortar sus bucles.
func (p *Prompter) EOF() bool { return p.eof }

// Pedir muestra el mensaje y devuelve la línea ingresada sin espacios.
func (p *Prompter) Pedir(mensaje string) string {
	fmt.Fprint(p.out, mensaje)
	if !p.in.Scan() {
		p.eof = true
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// PedirConCancelar muestra el mensaje y devuelve la respuesta; una entrada
// vacía (o fin de entrada) se interpreta como cancelación.
func (p *Prompter) PedirConCancelar(mensaje string) (string, bool) {
	respuesta := p.Pedir(mensaje)
	if respuesta == "" {
		p.Imprimir("↩️ Operación cancelada.")
		return "", false
	}
	return respuesta, true
}

// ConfirmarSN pregunta s/n hasta obtener una respuesta válida.
func (p *Prompter) ConfirmarSN(mensaje string) bool {
	for {
		respuesta := strings.ToLower(p.Pedir(mensaje))
		switch respuesta {
		case "s":
			return true
		case "n":
			return false
		}
		if p.eof {
			return false
		}
		p.Imprimir("⚠️ Por favor, ingresá 's' para sí o 'n' para no.")
	}
}

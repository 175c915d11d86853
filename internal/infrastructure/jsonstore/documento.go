// Package jsonstore implementa la persistencia de la aplicación sobre
// documentos JSON planos: lectura del documento completo al construir cada
// repositorio y reescritura completa tras cada mutación (último escritor
// gana, sin bloqueo entre procesos).
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jhoicas/tienda-cli/pkg/logger"
)

// Cargar lee un documento JSON desde ruta. Si el archivo no existe, lo crea
// con def y devuelve def. Si está vacío devuelve def sin tocarlo. Si está
// corrupto, lo reescribe con def, registra el error y devuelve def. Nunca
// propaga un fallo de E/S al llamador.
func Cargar[T any](log *logger.Logger, ruta string, def T) T {
	contenido, err := os.ReadFile(ruta)
	if errors.Is(err, os.ErrNotExist) {
		if werr := escribir(ruta, def); werr != nil {
			log.Error().Err(werr).Str("ruta", ruta).Msg("no se pudo crear el archivo con datos por defecto")
			return def
		}
		log.Info().Str("ruta", ruta).Msg("el archivo no existía, se creó con datos por defecto")
		return def
	}
	if err != nil {
		log.Error().Err(err).Str("ruta", ruta).Msg("no se pudo leer el archivo, se usan datos por defecto")
		return def
	}
	if len(contenido) == 0 {
		log.Debug().Str("ruta", ruta).Msg("archivo vacío, se usan datos por defecto")
		return def
	}

	var datos T
	if err := json.Unmarshal(contenido, &datos); err != nil {
		log.Error().Err(err).Str("ruta", ruta).Msg("archivo corrupto, se reescribe con datos por defecto")
		if werr := escribir(ruta, def); werr != nil {
			log.Error().Err(werr).Str("ruta", ruta).Msg("no se pudo reescribir el archivo corrupto")
		}
		return def
	}
	log.Debug().Str("ruta", ruta).Msg("documento cargado")
	return datos
}

// Guardar reescribe el documento completo en ruta. Un fallo de E/S se
// registra y se devuelve para que el repositorio decida; ningún fallo de
// guardado sale de la capa de persistencia como pánico.
func Guardar(log *logger.Logger, ruta string, doc any) error {
	if err := escribir(ruta, doc); err != nil {
		log.Error().Err(err).Str("ruta", ruta).Msg("no se pudieron guardar los datos")
		return fmt.Errorf("guardar %s: %w", ruta, err)
	}
	log.Debug().Str("ruta", ruta).Msg("documento guardado")
	return nil
}

func escribir(ruta string, doc any) error {
	contenido, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(ruta, contenido, 0o644)
}

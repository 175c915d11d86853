package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/tienda-cli/internal/application/auth"
	"github.com/jhoicas/tienda-cli/internal/application/shopping"
	"github.com/jhoicas/tienda-cli/internal/application/usecase"
	"github.com/jhoicas/tienda-cli/internal/infrastructure/jsonstore"
	"github.com/jhoicas/tienda-cli/internal/interfaces/cli"
	"github.com/jhoicas/tienda-cli/pkg/config"
	"github.com/jhoicas/tienda-cli/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error cargando configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	log.Info().Str("app", cfg.App.Name).Str("env", cfg.App.Env).Msg("iniciando aplicación")

	if err := os.MkdirAll(cfg.Datos.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Datos.Dir).Msg("no se pudo crear el directorio de datos")
	}

	// Capa de persistencia: cada documento JSON se carga completo acá y se
	// reescribe completo tras cada mutación.
	usuarioRepo := jsonstore.NewUsuarioRepository(log, cfg.Datos.RutaUsuarios())
	inventarioRepo := jsonstore.NewInventarioRepository(log, cfg.Datos.RutaStock(), cfg.Datos.RutaPrecios())
	ventaRepo := jsonstore.NewVentaRepository(log, cfg.Datos.RutaHistorialVentas(), cfg.Datos.RutaVentasRealizadas())

	// Capa de aplicación.
	authUC := auth.NewAuthUseCase(usuarioRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	inventarioUC := usecase.NewInventarioUseCase(inventarioRepo, log)
	checkout := shopping.NewCheckout(inventarioRepo, ventaRepo, log)

	app := cli.New(cli.NewPrompter(os.Stdin, os.Stdout), cli.Deps{
		Config:     cfg,
		Log:        log,
		Auth:       authUC,
		Usuarios:   usuarioUC,
		Inventario: inventarioUC,
		InvRepo:    inventarioRepo,
		Ventas:     ventaRepo,
		Checkout:   checkout,
	})
	app.Run()

	// Sincronización final de los cinco documentos.
	if err := usuarioRepo.Flush(); err != nil {
		log.Error().Err(err).Msg("error al guardar usuarios al salir")
	}
	if err := inventarioRepo.GuardarStock(); err != nil {
		log.Error().Err(err).Msg("error al guardar el stock al salir")
	}
	if err := inventarioRepo.GuardarPrecios(); err != nil {
		log.Error().Err(err).Msg("error al guardar los precios al salir")
	}
	if err := ventaRepo.Flush(); err != nil {
		log.Error().Err(err).Msg("error al guardar las ventas al salir")
	}
	log.Info().Msg("aplicación finalizada, datos sincronizados")
}

//go:build wireinject
// +build wireinject

package main

import (
	"Tecnofit/cmd"
	"Tecnofit/database"
	"Tecnofit/internal/config"
	"Tecnofit/internal/handlers"
	"Tecnofit/internal/repository"
	"Tecnofit/internal/services"
	"github.com/google/wire"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration(configurationPath())
}

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		repository.NewExerciseRepository,
		services.NewExerciseService,
		handlers.NewExerciseHandler,
		repository.NewTrainingRepository,
		services.NewTrainingService,
		handlers.NewTrainingHandler,
		repository.NewUserRepository,
		services.NewUserService,
		handlers.NewUserHandler,
		database.SetupDatabase,
		services.NewLogService,
		services.NewPurger,
		handlers.NewJanitorHandler,
		Provider,
	)
	return nil, nil
}

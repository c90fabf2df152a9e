package cmd

import (
	"Tecnofit/internal/config"
	"Tecnofit/internal/handlers"
	"Tecnofit/internal/services"
	"gorm.io/gorm"
)

type Server struct {
	Configuration   *config.Configuration
	DB              *gorm.DB
	ExerciseService services.ExerciseService
	ExerciseHandler *handlers.ExerciseHandler
	TrainingService services.TrainingService
	TrainingHandler *handlers.TrainingHandler
	UserService     services.UserService
	UserHandler     *handlers.UserHandler
	LogService      services.LogService
	Purger          *services.Purger
	JanitorHandler  *handlers.JanitorHandler
}

func NewServer(
	configuration *config.Configuration,
	db *gorm.DB,
	exerciseService services.ExerciseService,
	exerciseHandler *handlers.ExerciseHandler,
	trainingService services.TrainingService,
	trainingHandler *handlers.TrainingHandler,
	userService services.UserService,
	userHandler *handlers.UserHandler,
	logService services.LogService,
	purger *services.Purger,
	janitorHandler *handlers.JanitorHandler,
) *Server {
	return &Server{
		Configuration:   configuration,
		DB:              db,
		ExerciseService: exerciseService,
		ExerciseHandler: exerciseHandler,
		TrainingService: trainingService,
		TrainingHandler: trainingHandler,
		UserService:     userService,
		UserHandler:     userHandler,
		LogService:      logService,
		Purger:          purger,
		JanitorHandler:  janitorHandler,
	}
}

package repository

import (
	apperrors "Deployer_Microservice/internal/server-service/errors"
	"Deployer_Microservice/internal/server-service/model"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	Repository[model.Project]
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return newBaseRepository[model.Project](db, apperrors.ErrProjectNotFound)
}

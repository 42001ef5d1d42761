package controllers

import (
	"musea/config"
	artifactController "musea/internal/controllers/artifact"
	exhibitionController "musea/internal/controllers/exhibition"
	feedbackController "musea/internal/controllers/feedback"
	maintenanceController "musea/internal/controllers/maintenance"
	staffController "musea/internal/controllers/staff"
	"musea/internal/database"
	"musea/internal/repositories"
	"musea/internal/services"
)

type Controllers struct {
	Maintenance maintenanceController.MaintenanceControllerInterface
	Artifact    artifactController.ArtifactControllerInterface
	Staff       staffController.StaffControllerInterface
	Exhibition  exhibitionController.ExhibitionControllerInterface
	Feedback    feedbackController.FeedbackControllerInterface
}

func New(
	repos repositories.Repository,
	service services.Service,
	db database.DB,
	config config.Config,
) Controllers {
	return Controllers{
		Maintenance: maintenanceController.New(service.Maintenance, config),
		Artifact:    artifactController.New(repos, db, config),
		Staff:       staffController.New(repos, db, config),
		Exhibition:  exhibitionController.New(repos, service, db, config),
		Feedback:    feedbackController.New(repos, db, config),
	}
}

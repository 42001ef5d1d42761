package services

import (
	"musea/config"
	"musea/internal/database"
	"musea/internal/repositories"
)

type Service struct {
	Transaction *TransactionService
	Scheduler   *SchedulerService
	Maintenance *MaintenanceService
}

func New(db database.DB, config config.Config, repos repositories.Repository) Service {
	return Service{
		Transaction: NewTransactionService(db),
		Scheduler:   NewSchedulerService(),
		Maintenance: NewMaintenanceService(repos, db),
	}
}

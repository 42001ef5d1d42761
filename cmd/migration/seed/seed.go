package seed

import (
	"time"

	"musea/config"
	"musea/pkg/logger"
	. "musea/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	artifacts := []Artifact{
		{
			Code:         "ARK-001",
			Name:         "Bronze Kris",
			Origin:       "Central Java",
			Era:          "Majapahit",
			Condition:    "Good",
			InsuredValue: decimalPtr(decimal.NewFromInt(12500)),
			OnDisplay:    true,
		},
		{
			Code:         "ARK-002",
			Name:         "Celadon Vase",
			Origin:       "South Sulawesi",
			Era:          "Ming Trade",
			Condition:    "Fragile",
			InsuredValue: decimalPtr(decimal.NewFromInt(40000)),
			OnDisplay:    false,
		},
		{
			Code:      "ARK-003",
			Name:      "Batik Ceremonial Cloth",
			Origin:    "Yogyakarta",
			Era:       "19th Century",
			Condition: "Good",
			OnDisplay: true,
		},
	}

	for i := range artifacts {
		var existing Artifact
		if err := db.First(&existing, "code = ?", artifacts[i].Code).Error; err == nil {
			log.Info("Artifact already exists", "code", artifacts[i].Code)
			continue
		}
		if err := db.Create(&artifacts[i]).Error; err != nil {
			return log.Err("failed to create artifact", err, "code", artifacts[i].Code)
		}
	}

	staff := []Staff{
		{
			Name:  "Siti Rahma",
			Role:  "Conservator",
			Email: stringPtr("siti.rahma@example.com"),
		},
		{
			Name:  "Budi Hartono",
			Role:  "Registrar",
			Email: stringPtr("budi.hartono@example.com"),
			Phone: stringPtr("+62-812-0000-0000"),
		},
	}

	for i := range staff {
		var existing Staff
		if err := db.First(&existing, "email = ?", staff[i].Email).Error; err == nil {
			log.Info("Staff already exists", "email", *staff[i].Email)
			continue
		}
		if err := db.Create(&staff[i]).Error; err != nil {
			return log.Err("failed to create staff", err, "name", staff[i].Name)
		}
	}

	records := []MaintenanceRecord{
		{
			ArtifactID:  artifacts[0].ID,
			StaffID:     intPtr(staff[0].ID),
			Kind:        MaintenanceKindRoutine,
			Description: "Quarterly corrosion inspection",
			StartedAt:   time.Now().AddDate(0, 0, 7),
		},
		{
			ArtifactID:  artifacts[1].ID,
			StaffID:     intPtr(staff[0].ID),
			Kind:        MaintenanceKindPreventive,
			Description: "Humidity-controlled case recalibration",
			StartedAt:   time.Now().AddDate(0, 0, 14),
		},
	}

	for i := range records {
		if err := db.Create(&records[i]).Error; err != nil {
			return log.Err("failed to create maintenance record", err)
		}
	}

	exhibition := Exhibition{
		Name:      "Treasures of the Archipelago",
		Theme:     "Maritime trade",
		Location:  "Hall A",
		StartDate: datatypes.Date(time.Now().AddDate(0, -1, 0)),
		EndDate:   datatypes.Date(time.Now().AddDate(0, 2, 0)),
	}
	if err := db.Create(&exhibition).Error; err != nil {
		return log.Err("failed to create exhibition", err)
	}

	if err := db.Model(&exhibition).
		Association("Artifacts").
		Replace([]*Artifact{&artifacts[0], &artifacts[2]}); err != nil {
		return log.Err("failed to assign exhibition artifacts", err)
	}

	feedback := []Feedback{
		{
			VisitorName: "Dewi Anggraini",
			Rating:      5,
			Comment:     stringPtr("The kris collection is stunning."),
			VisitedOn:   datatypes.Date(time.Now().AddDate(0, 0, -3)),
		},
		{
			VisitorName: "Mark Jansen",
			Rating:      4,
			VisitedOn:   datatypes.Date(time.Now().AddDate(0, 0, -1)),
		},
	}

	for i := range feedback {
		if err := db.Create(&feedback[i]).Error; err != nil {
			return log.Err("failed to create feedback", err)
		}
	}

	log.Info("Seed complete")
	return nil
}

package main

import (
	"time"

	"github.com/shiptrack-api/internal/config"
	"github.com/shiptrack-api/internal/constants"
	"github.com/shiptrack-api/internal/logger"
	"github.com/shiptrack-api/internal/models"
	"github.com/shiptrack-api/internal/service"

	"github.com/shopspring/decimal"
)

type seedShipment struct {
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	Departure           string
	Destination         string
	CurrentLocation     string
	Status              string
	ShipmentType        string
	Weight              float64
	Dimensions          string
	Description         string
	SpecialInstructions string
	Movements           []string
}

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	now := time.Now()
	seeds := []seedShipment{
		{
			CustomerName:    "Acme Imports Ltd",
			CustomerEmail:   "logistics@acme-imports.example",
			CustomerPhone:   "+44 20 7946 0958",
			Departure:       "Shanghai, China",
			Destination:     "Felixstowe, United Kingdom",
			CurrentLocation: "Port of Singapore",
			Status:          constants.ShipmentStatusInTransit,
			ShipmentType:    constants.ShipmentTypeStandard,
			Weight:          18250.500,
			Dimensions:      "12.03m x 2.35m x 2.39m",
			Description:     "Consumer electronics, palletized",
			Movements:       []string{"Shanghai, China", "Port of Singapore"},
		},
		{
			CustomerName:        "Nordwind Trading GmbH",
			CustomerEmail:       "ops@nordwind-trading.example",
			CustomerPhone:       "+49 40 3337 8890",
			Departure:           "Hamburg, Germany",
			Destination:         "New York, USA",
			CurrentLocation:     "Hamburg, Germany",
			Status:              constants.ShipmentStatusPending,
			ShipmentType:        constants.ShipmentTypeExpress,
			Weight:              4200,
			Dimensions:          "6.06m x 2.44m x 2.59m",
			Description:         "Machine parts",
			SpecialInstructions: "Keep upright, fragile gauges inside",
			Movements:           []string{"Hamburg, Germany"},
		},
		{
			CustomerName:    "Pacific Fresh Co",
			CustomerEmail:   "shipping@pacific-fresh.example",
			CustomerPhone:   "+1 310 555 0147",
			Departure:       "Los Angeles, USA",
			Destination:     "Yokohama, Japan",
			CurrentLocation: "Yokohama, Japan",
			Status:          constants.ShipmentStatusDelivered,
			ShipmentType:    constants.ShipmentTypePriority,
			Weight:          9650.250,
			Dimensions:      "12.19m x 2.44m x 2.90m",
			Description:     "Refrigerated produce",
			Movements:       []string{"Los Angeles, USA", "Honolulu, USA", "Yokohama, Japan"},
		},
	}

	for _, seed := range seeds {
		var existing models.Shipment
		if err := models.DB.Where("customer_email = ?", seed.CustomerEmail).First(&existing).Error; err == nil {
			stdLog.Printf("Shipment already exists for %s: %s", seed.CustomerEmail, existing.ContainerID)
			continue
		}

		containerID := service.GenerateContainerID()
		shipment := models.Shipment{
			ContainerID:         containerID,
			ContainerPath:       service.GenerateContainerPath(containerID, now),
			CustomerName:        seed.CustomerName,
			CustomerEmail:       seed.CustomerEmail,
			CustomerPhone:       seed.CustomerPhone,
			DepartureLocation:   seed.Departure,
			DestinationLocation: seed.Destination,
			CurrentLocation:     seed.CurrentLocation,
			DepartureDate:       now.AddDate(0, 0, -7),
			ETA:                 now.AddDate(0, 0, 14),
			Status:              seed.Status,
			ShipmentType:        seed.ShipmentType,
			Weight:              models.NewWeightFromDecimal(decimal.NewFromFloat(seed.Weight)),
			Dimensions:          seed.Dimensions,
			Description:         seed.Description,
			SpecialInstructions: seed.SpecialInstructions,
		}
		for i, location := range seed.Movements {
			shipment.LocationHistory = append(shipment.LocationHistory, models.LocationHistory{
				Location:   location,
				Status:     seed.Status,
				RecordedAt: now.AddDate(0, 0, -7+i*3),
			})
		}
		if err := models.DB.Create(&shipment).Error; err != nil {
			stdLog.Printf("Failed to create shipment for %s: %v", seed.CustomerEmail, err)
			continue
		}
		stdLog.Printf("Created shipment: %s (%s)", shipment.ContainerID, seed.CustomerName)
	}

	enquiries := []models.Enquiry{
		{
			Name:    "Maria Santos",
			Email:   "maria.santos@example.com",
			Subject: "Quote for reefer container",
			Message: "Hello, could you send a quote for a 40ft refrigerated container from Valparaiso to Rotterdam next month?",
			Status:  constants.EnquiryStatusPending,
		},
		{
			Name:    "James Okafor",
			Email:   "j.okafor@example.com",
			Subject: "Customs paperwork question",
			Message: "What documents do you need from us for customs clearance on machinery imports?",
			Status:  constants.EnquiryStatusResponded,
		},
	}
	for _, enquiry := range enquiries {
		var existing models.Enquiry
		if err := models.DB.Where("email = ? AND subject = ?", enquiry.Email, enquiry.Subject).First(&existing).Error; err == nil {
			stdLog.Printf("Enquiry already exists: %s", enquiry.Subject)
			continue
		}
		if err := models.DB.Create(&enquiry).Error; err != nil {
			stdLog.Printf("Failed to create enquiry %s: %v", enquiry.Subject, err)
			continue
		}
		stdLog.Printf("Created enquiry: %s", enquiry.Subject)
	}

	stdLog.Printf("Seed finished")
}

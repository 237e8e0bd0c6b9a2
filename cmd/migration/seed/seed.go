package seed

import (
	"time"
	"washboard/config"
	. "washboard/internal/models"
	"washboard/internal/utils"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func rolePtr(r EmployeeRole) *EmployeeRole {
	return &r
}

func boolPtr(b bool) *bool {
	return &b
}

func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	employees := []Employee{
		{Name: "Arman", Role: RoleAdmin, IsActive: true},
		{Name: "Bekzat", Role: RoleWasher, IsActive: true},
		{Name: "Daniyar", Role: RoleWasher, IsActive: true},
		{Name: "Sanzhar", Role: RoleWasher, IsActive: false},
	}

	for i := range employees {
		var existing Employee
		if err := db.First(&existing, "name = ?", employees[i].Name).Error; err == nil {
			employees[i] = existing
			log.Info("Employee already exists", "name", existing.Name)
			continue
		}
		log.Info("Seeding employee", "name", employees[i].Name)
		if err := db.Create(&employees[i]).Error; err != nil {
			return log.Err("failed to create employee", err, "name", employees[i].Name)
		}
	}

	admin, washerA, washerB := employees[0], employees[1], employees[2]
	yesterday := utils.Day(time.Now().UTC().AddDate(0, 0, -1))

	assignments := []DailyRoleAssignment{
		{AssignmentDate: yesterday, EmployeeID: admin.ID, Role: rolePtr(RoleAdmin)},
		{AssignmentDate: yesterday, EmployeeID: washerA.ID, Role: rolePtr(RoleWasher)},
		{
			AssignmentDate: yesterday,
			EmployeeID:     washerB.ID,
			Role:           rolePtr(RoleWasher),
			MinimumApplies: boolPtr(false),
		},
	}
	for _, assignment := range assignments {
		if err := db.Create(&assignment).Error; err != nil {
			return log.Err("failed to create role assignment", err)
		}
	}

	records := []WashRecord{
		{
			ServiceDate: yesterday,
			Price:       decimal.NewFromInt(90),
			PaymentType: PaymentCash,
			Employees:   []Employee{washerA, washerB},
		},
		{
			ServiceDate: yesterday,
			Price:       decimal.NewFromInt(120),
			PaymentType: PaymentCard,
			Employees:   []Employee{washerA},
		},
		{
			ServiceDate: yesterday,
			Price:       decimal.NewFromInt(60),
			PaymentType: PaymentDebt,
			Employees:   []Employee{washerB},
		},
	}
	for i := range records {
		if err := db.Create(&records[i]).Error; err != nil {
			return log.Err("failed to create wash record", err)
		}
	}

	log.Info(
		"Seed complete",
		"employees", len(employees),
		"assignments", len(assignments),
		"records", len(records),
	)
	return nil
}

package services

import (
	"sort"
	"washboard/config"
	. "washboard/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryConfig carries the minimum-payment configuration for one computation.
// Percentages are fractions of revenue (0.35 means 35%).
type SalaryConfig struct {
	WasherMinimum decimal.Decimal
	AdminMinimum  decimal.Decimal
	WasherPercent decimal.Decimal
	AdminPercent  decimal.Decimal
}

func SalaryConfigFrom(cfg config.Config) SalaryConfig {
	return SalaryConfig{
		WasherMinimum: decimal.NewFromFloat(cfg.SalaryWasherMinimum),
		AdminMinimum:  decimal.NewFromFloat(cfg.SalaryAdminMinimum),
		WasherPercent: decimal.NewFromFloat(cfg.SalaryWasherPercent),
		AdminPercent:  decimal.NewFromFloat(cfg.SalaryAdminPercent),
	}
}

// DailySalary is one employee's computed pay for a single day.
type DailySalary struct {
	EmployeeID       uuid.UUID
	CalculatedSalary decimal.Decimal
}

// SalaryCalculator computes each participant's pay for one day. The reporting
// pipeline depends only on this interface and treats the implementation as a
// black box.
type SalaryCalculator interface {
	Calculate(
		cfg SalaryConfig,
		records []*WashRecord,
		roles map[uuid.UUID]EmployeeRole,
		roster []*Employee,
		minimumApplies map[uuid.UUID]bool,
	) []DailySalary
}

// SalaryService is the default calculator: washers earn a percentage of their
// even revenue share, admins a percentage of the whole day's revenue, and
// either is floored at the role's configured daily minimum unless the
// employee's minimum flag was explicitly turned off for that day.
type SalaryService struct {
	log logger.Logger
}

func NewSalaryService() *SalaryService {
	return &SalaryService{
		log: logger.New("salaryService"),
	}
}

func (s *SalaryService) Calculate(
	cfg SalaryConfig,
	records []*WashRecord,
	roles map[uuid.UUID]EmployeeRole,
	roster []*Employee,
	minimumApplies map[uuid.UUID]bool,
) []DailySalary {
	dayRevenue := decimal.Zero
	shares := make(map[uuid.UUID]decimal.Decimal, len(roles))

	for _, record := range records {
		dayRevenue = dayRevenue.Add(record.Price)
		share := record.Share()
		for _, id := range record.EmployeeIDs() {
			shares[id] = shares[id].Add(share)
		}
	}

	salaries := make([]DailySalary, 0, len(roles))
	for employeeID, role := range roles {
		var base, minimum decimal.Decimal
		if role == RoleAdmin {
			base = dayRevenue.Mul(cfg.AdminPercent)
			minimum = cfg.AdminMinimum
		} else {
			base = shares[employeeID].Mul(cfg.WasherPercent)
			minimum = cfg.WasherMinimum
		}

		salary := base
		floorOn, ok := minimumApplies[employeeID]
		if !ok {
			floorOn = true
		}
		if floorOn && salary.LessThan(minimum) {
			salary = minimum
		}

		salaries = append(salaries, DailySalary{
			EmployeeID:       employeeID,
			CalculatedSalary: salary,
		})
	}

	// Map iteration order is random, sort so identical inputs produce
	// identical output.
	sort.Slice(salaries, func(i, j int) bool {
		return salaries[i].EmployeeID.String() < salaries[j].EmployeeID.String()
	})

	return salaries
}

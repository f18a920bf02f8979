package memory

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/TargetKart/targetkart-backend/internal/models"
)

// date builds a midnight UTC timestamp for seed records
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedCustomers returns the demo population used in mock-data mode
func SeedCustomers() []*models.Customer {
	return []*models.Customer{
		{
			ID:            "1",
			Name:          "Rahul Sharma",
			Email:         "rahul.sharma@example.com",
			Phone:         "+91 98765 43210",
			TotalSpend:    15750,
			LastOrderDate: date(2023, time.January, 15),
			VisitCount:    8,
			Tags:          []string{"premium", "loyal"},
			Status:        models.CustomerStatusActive,
			CreatedAt:     date(2022, time.June, 12),
		},
		{
			ID:            "2",
			Name:          "Priya Patel",
			Email:         "priya.patel@example.com",
			Phone:         "+91 87654 32109",
			TotalSpend:    4350,
			LastOrderDate: date(2022, time.November, 30),
			VisitCount:    3,
			Tags:          []string{"new"},
			Status:        models.CustomerStatusActive,
			CreatedAt:     date(2022, time.October, 5),
		},
		{
			ID:            "3",
			Name:          "Amit Verma",
			Email:         "amit.verma@example.com",
			TotalSpend:    22400,
			LastOrderDate: date(2023, time.February, 1),
			VisitCount:    12,
			Tags:          []string{"premium", "high-value"},
			Status:        models.CustomerStatusActive,
			CreatedAt:     date(2021, time.August, 17),
		},
		{
			ID:            "4",
			Name:          "Meera Joshi",
			Email:         "meera.j@example.com",
			Phone:         "+91 76543 21098",
			TotalSpend:    8200,
			LastOrderDate: date(2022, time.August, 28),
			VisitCount:    5,
			Tags:          []string{"regular"},
			Status:        models.CustomerStatusInactive,
			CreatedAt:     date(2022, time.February, 25),
		},
		{
			ID:            "5",
			Name:          "Vikram Singh",
			Email:         "vikram.s@example.com",
			TotalSpend:    1200,
			LastOrderDate: date(2022, time.December, 10),
			VisitCount:    2,
			Tags:          []string{"new"},
			Status:        models.CustomerStatusActive,
			CreatedAt:     date(2022, time.November, 2),
		},
	}
}

// SeedSegments returns the demo segments used in mock-data mode
func SeedSegments() []*models.Segment {
	return []*models.Segment{
		{
			ID:          "seg001",
			Name:        "High Value Customers",
			Description: "Customers who have spent more than ₹10,000",
			RuleGroup: models.RuleGroup{
				ID:         "group1",
				Combinator: models.CombinatorAnd,
				Rules: []models.RuleNode{
					{Rule: &models.Rule{ID: "rule1", Field: models.FieldTotalSpend, Operator: models.OperatorGreaterThan, Value: float64(10000)}},
				},
			},
			CreatedAt:    date(2023, time.January, 10),
			CreatedBy:    "Demo User",
			LastModified: date(2023, time.January, 10),
		},
		{
			ID:          "seg002",
			Name:        "Inactive Customers",
			Description: "Customers who have not made a purchase in the last 90 days",
			RuleGroup: models.RuleGroup{
				ID:         "group2",
				Combinator: models.CombinatorAnd,
				Rules: []models.RuleNode{
					{Rule: &models.Rule{ID: "rule2", Field: models.FieldStatus, Operator: models.OperatorEquals, Value: "inactive"}},
				},
			},
			CreatedAt:    date(2023, time.January, 15),
			CreatedBy:    "Demo User",
			LastModified: date(2023, time.January, 20),
		},
		{
			ID:          "seg003",
			Name:        "New Customers with Low Engagement",
			Description: "New customers with less than 3 visits",
			RuleGroup: models.RuleGroup{
				ID:         "group3",
				Combinator: models.CombinatorAnd,
				Rules: []models.RuleNode{
					{Rule: &models.Rule{ID: "rule3", Field: models.FieldTags, Operator: models.OperatorContains, Value: "new"}},
					{Rule: &models.Rule{ID: "rule4", Field: models.FieldVisitCount, Operator: models.OperatorLessThan, Value: float64(3)}},
				},
			},
			CreatedAt:    date(2023, time.February, 1),
			CreatedBy:    "Demo User",
			LastModified: date(2023, time.February, 1),
		},
	}
}

// SeedAdminUsers returns the demo dashboard login for mock-data mode
func SeedAdminUsers() []*models.AdminUser {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on an invalid cost, which is fixed here
		panic(err)
	}

	return []*models.AdminUser{
		{
			ID:        uuid.NewString(),
			Name:      "Demo User",
			Email:     "demo@targetkart.in",
			Password:  string(hash),
			Role:      "admin",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

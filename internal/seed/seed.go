// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"stockpile/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the plaintext password assigned to every seeded user.
const DefaultPassword = "password123"

// Seeder builds domain entities and persists them to the database.
type Seeder struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all rows from the three tables.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"supplies", "needs", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// CreateUser persists a fake user with the default password.
func (s *Seeder) CreateUser() (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     gofakeit.Name(),
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), s.r.Intn(10000)),
		Password: string(hash),
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateNeed persists a fake need owned by the given user.
func (s *Seeder) CreateNeed(user *models.User) (*models.Need, error) {
	need := &models.Need{
		Name:      gofakeit.NounConcrete(),
		Frequency: 1 + s.r.Intn(30),
		Quantity:  1 + s.r.Intn(12),
		UserID:    user.ID,
	}
	if err := s.db.Create(need).Error; err != nil {
		return nil, err
	}
	return need, nil
}

// CreateSupply persists a fake supply answering the given need.
func (s *Seeder) CreateSupply(user *models.User, need *models.Need) (*models.Supply, error) {
	supply := &models.Supply{
		Name:               gofakeit.ProductName(),
		Quantity:           1 + s.r.Intn(50),
		Frequency:          1 + s.r.Intn(30),
		FailRate:           s.r.Intn(100),
		LifeCycle:          1 + s.r.Intn(365),
		DemandPerLifeCycle: 1 + s.r.Intn(20),
		NeedID:             need.ID,
		UserID:             user.ID,
	}
	if err := s.db.Create(supply).Error; err != nil {
		return nil, err
	}
	return supply, nil
}

// Run populates the database with the requested number of users, each with a
// handful of needs and supplies.
func (s *Seeder) Run(numUsers, needsPerUser, suppliesPerNeed int) error {
	for i := 0; i < numUsers; i++ {
		user, err := s.CreateUser()
		if err != nil {
			return fmt.Errorf("seeding user: %w", err)
		}
		for j := 0; j < needsPerUser; j++ {
			need, err := s.CreateNeed(user)
			if err != nil {
				return fmt.Errorf("seeding need: %w", err)
			}
			for k := 0; k < suppliesPerNeed; k++ {
				if _, err := s.CreateSupply(user, need); err != nil {
					return fmt.Errorf("seeding supply: %w", err)
				}
			}
		}
	}
	return nil
}

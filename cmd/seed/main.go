// Command main runs the database seeder for Stockpile.
package main

import (
	"flag"
	"log"

	"stockpile/internal/config"
	"stockpile/internal/database"
	"stockpile/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of users to create")
	needsPerUser := flag.Int("needs", 3, "Number of needs per user")
	suppliesPerNeed := flag.Int("supplies", 2, "Number of supplies per need")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(*numUsers, *needsPerUser, *suppliesPerNeed); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users (%d needs each, %d supplies per need). Password for all: %q",
		*numUsers, *needsPerUser, *suppliesPerNeed, seed.DefaultPassword)
}

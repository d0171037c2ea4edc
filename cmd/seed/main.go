// Command main runs the database seeder for Quad.
package main

import (
	"flag"
	"log"

	"quad/internal/config"
	"quad/internal/database"
	"quad/internal/seed"
)

func main() {
	numProfiles := flag.Int("profiles", 25, "Number of profiles to create")
	numPosts := flag.Int("posts", 100, "Number of posts to create")
	maxDays := flag.Int("max-days", 90, "Spread post timestamps over this many past days")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Printf("Seeding %d profiles, %d posts, clean=%v", *numProfiles, *numPosts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumProfiles: *numProfiles,
		NumPosts:    *numPosts,
		MaxDays:     *maxDays,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}

package main

import (
	"context"
	"log"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/config"
	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/repositories"
)

// Seeds a handful of demo students so the enrichment endpoints have
// something to work against in a fresh environment.
func main() {
	log.Println("🚀 Seeding demo students...")

	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	studentRepo := repositories.NewStudentRepository(db)
	ctx := context.Background()

	students := []models.Student{
		{
			RegistrationNumber: "RA2111003010001",
			Name:               "Ananya Sharma",
			Email:              "ananya@example.edu",
			Department:         "Computer Science",
			Semester:           6,
			Marks: []models.SemesterMark{
				{Subject: "Data Structures", Semester: 3, Score: 88, MaxScore: 100},
				{Subject: "Operating Systems", Semester: 4, Score: 91, MaxScore: 100},
				{Subject: "Databases", Semester: 5, Score: 84, MaxScore: 100},
			},
			CodingProfiles: models.CodingProfiles{
				LeetCodeUsername: "ananya_s",
				GitHubUsername:   "ananyasharma",
			},
		},
		{
			RegistrationNumber: "RA2111003010002",
			Name:               "Rohit Verma",
			Email:              "rohit@example.edu",
			Department:         "Information Technology",
			Semester:           4,
			Marks: []models.SemesterMark{
				{Subject: "Discrete Mathematics", Semester: 2, Score: 72, MaxScore: 100},
				{Subject: "Computer Networks", Semester: 3, Score: 79, MaxScore: 100},
			},
			CodingProfiles: models.CodingProfiles{
				GitHubUsername: "rohitv",
			},
		},
	}

	seeded := 0
	for i := range students {
		if err := studentRepo.Create(ctx, &students[i]); err != nil {
			log.Printf("⚠️  Skipping %s: %v\n", students[i].RegistrationNumber, err)
			continue
		}
		seeded++
	}

	log.Printf("✅ Seeded %d students\n", seeded)
}

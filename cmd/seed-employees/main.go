package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/sample-hr/employee-admin/internal/config"
	"github.com/sample-hr/employee-admin/internal/database"
	"github.com/sample-hr/employee-admin/internal/logger"
	"github.com/sample-hr/employee-admin/internal/model"
	"github.com/sample-hr/employee-admin/internal/repository"
)

var names = []string{
	"Sato Haruto", "Suzuki Yui", "Takahashi Sota", "Tanaka Hina", "Watanabe Yuto",
	"Ito Mio", "Yamamoto Riku", "Nakamura Sakura", "Kobayashi Minato", "Kato Aoi",
	"Yoshida Ren", "Yamada Yuna", "Sasaki Hinata", "Yamaguchi Mei", "Matsumoto Sora",
	"Inoue Rin", "Kimura Haru", "Hayashi Koharu", "Shimizu Yamato", "Saito Tsumugi",
}

var addresses = []string{
	"Tokyo Shinjuku 1-1-1", "Osaka Kita 2-3-4", "Nagoya Naka 5-6-7",
	"Fukuoka Hakata 8-9-10", "Sapporo Chuo 11-12-13",
}

func main() {
	count := flag.Int("n", len(names), "Number of employees to seed")
	force := flag.Bool("force", false, "Seed even when employees already exist")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, closeDB, err := database.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open record store")
	}
	defer closeDB()

	employeeRepo := repository.NewEmployeeRepository(db)

	existing, err := employeeRepo.ListOrderedByHireDate(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to check existing employees")
	}
	if len(existing) > 0 && !*force {
		fmt.Printf("%d employees already exist, nothing to do (use -force to add more)\n", len(existing))
		return
	}

	fmt.Printf("=== Seeding %d Employees ===\n", *count)

	successCount := 0
	for i := 0; i < *count; i++ {
		e := seedEmployee(i)
		if _, err := employeeRepo.Insert(ctx, e); err != nil {
			fmt.Printf("Error creating employee %s: %v\n", e.Name, err)
			continue
		}
		successCount++
		if (i+1)%10 == 0 {
			fmt.Printf("Created %d employees...\n", i+1)
		}
	}

	fmt.Printf("\nSeed completed! Successfully added %d/%d employees.\n", successCount, *count)
}

func seedEmployee(i int) model.Employee {
	gender := "male"
	if i%2 != 0 {
		gender = "female"
	}

	return model.Employee{
		Name:            names[i%len(names)],
		Image:           fmt.Sprintf("e%d.png", i+1),
		Gender:          gender,
		HireDate:        model.NewDate(2005+i%18, time.Month(1+i%12), 1+(i*7)%28),
		MailAddress:     fmt.Sprintf("employee%d@example.com", i+1),
		ZipCode:         fmt.Sprintf("%03d-%04d", 100+i, 1000+i*37%9000),
		Address:         addresses[i%len(addresses)],
		Telephone:       fmt.Sprintf("0%d-%04d-%04d", 3+i%6, 1000+i, 2000+i*3),
		Salary:          200000 + (i%10)*15000,
		Characteristics: "Seeded employee record.",
		DependentsCount: i % 4,
	}
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/sample-hr/employee-admin/internal/config"
	"github.com/sample-hr/employee-admin/internal/database"
	"github.com/sample-hr/employee-admin/internal/logger"
	"github.com/sample-hr/employee-admin/internal/repository"
	"github.com/sample-hr/employee-admin/internal/validator"
)

// create-admin registers the first administrator, who can then register
// the others through the API.
func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to the record store ───────────────────────────────────
	db, closeDB, err := database.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open record store")
	}
	defer closeDB()

	adminRepo := repository.NewAdministratorRepository(db)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Administrator ===")

	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')

	fmt.Print("Enter Mail Address: ")
	mail, _ := reader.ReadString('\n')

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // Newline after password input
	if err != nil {
		fmt.Println("Error reading password")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	admin, err := validator.ParseRegistration(map[string]string{
		validator.FieldName:        strings.TrimSpace(name),
		validator.FieldMailAddress: strings.TrimSpace(mail),
		validator.FieldPassword:    string(bytePassword),
	})
	if err != nil {
		printViolations(validator.Fields(err))
		os.Exit(1)
	}

	id, err := adminRepo.Insert(ctx, admin)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create administrator")
	}

	fmt.Printf("\nSuccess! Administrator '%s' (%s) created with ID: %d\n", admin.Name, admin.MailAddress, id)
}

func printViolations(fields map[string]string) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("Error: %s\n", fields[k])
	}
}

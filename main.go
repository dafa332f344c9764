// Main application runner.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"dermalead-api/config"
	"dermalead-api/db"
	"dermalead-api/forms"
	"dermalead-api/forms/delivery"
	"dermalead-api/middlewares"
	"dermalead-api/routes"
)

/*
Populate the database with initial data if the populate flag is set.

Arguments:

	ctx: Startup context.
	populateFlag: A boolean flag indicating whether to populate the database.
	pool: A connection pool to the database.
*/
func populateDatabase(ctx context.Context, populateFlag *bool, pool *pgxpool.Pool) {
	if *populateFlag {
		fmt.Println("Populating the database with fake data and adding admin user...")
		if err := db.PopulateDatabase(ctx, pool); err != nil {
			log.Fatalf("Failed to populate the database: %v\n", err)
		}
		fmt.Println("Database populated successfully.")
	}

	// the admin account is needed regardless of the flag
	if err := db.AddAdminUser(ctx, pool); err != nil {
		log.Fatalf("Failed to add the admin user: %v\n", err)
	}
}

// Main function
// Prepares the database, wires the form delivery channels and exposes
// the API routes.
func main() {
	populateFlag := flag.Bool("populate", false, "Populate the database with initial data.")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v\n", err)
	}
	jwtSecret := middlewares.InitJWTSecret(cfg.JWTSecret)

	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("Failed to ensure database schema: %v\n", err)
	}

	populateDatabase(ctx, populateFlag, pool)

	// lead delivery channels and the coordinator in front of them
	analytics := db.NewAnalyticsStore(pool)
	coordinator := forms.NewCoordinator(
		delivery.NewEmailChannel(cfg.Email),
		delivery.NewCRMChannel(cfg.CRM),
		delivery.NewPaymentClient(cfg.Event.PaymentURL),
		analytics,
		cfg.Event,
	)

	r := routes.SetupRoutes(pool, jwtSecret, coordinator, analytics)

	fmt.Printf("Server running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// Command seed fills the configured MongoDB database with demo workers and
// one demo customer. Existing accounts and bookings are removed first.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"hiredaily/config"
	"hiredaily/database"
	"hiredaily/database/repository"
	"hiredaily/models"
	"hiredaily/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const demoPassword = "Password123"

var cities = []models.Location{
	{City: "Bengaluru", State: "Karnataka", ZipCode: "560001"},
	{City: "Pune", State: "Maharashtra", ZipCode: "411001"},
	{City: "Chennai", State: "Tamil Nadu", ZipCode: "600001"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	utils.InitializeLogger(false, "info")
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.DatabaseName)

	for _, coll := range []string{"customers", "workers", "bookings", "account_emails"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}
	repos := repository.NewMongoRepositories(ctx, db, logger)

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	counter := 1
	for _, skill := range models.Skills {
		for _, loc := range cities {
			worker := &models.Worker{
				ID:           uuid.New().String(),
				Name:         fmt.Sprintf("Demo %s %d", skill, counter),
				Email:        fmt.Sprintf("%s_%d@example.com", skill, counter),
				PasswordHash: string(hashed),
				Phone:        fmt.Sprintf("90000%05d", counter),
				Skills:       []models.Skill{skill},
				Location:     loc,
				HourlyRate:   float64(models.MinHourlyRate + rng.Intn(models.MaxHourlyRate-models.MinHourlyRate+1)),
				Experience:   float64(rng.Intn(15)),
				Description:  fmt.Sprintf("Experienced %s serving %s.", skill, loc.City),
				Availability: models.DefaultAvailability(),
				UserType:     models.KindWorker,
			}
			// Every fourth worker is off duty so discovery filtering is visible.
			worker.Availability.IsAvailable = counter%4 != 0

			if err := repos.Emails.Claim(ctx, worker.Email, models.KindWorker, worker.ID); err != nil {
				log.Fatalf("Failed to claim email %s: %v", worker.Email, err)
			}
			if err := repos.Workers.Create(ctx, worker); err != nil {
				log.Fatalf("Failed to insert worker %s: %v", worker.Email, err)
			}
			counter++
		}
	}

	customer := &models.Customer{
		ID:           uuid.New().String(),
		Name:         "Demo Customer",
		Email:        "customer@example.com",
		PasswordHash: string(hashed),
		Phone:        "9000099999",
		Location:     cities[0],
		UserType:     models.KindCustomer,
	}
	if err := repos.Emails.Claim(ctx, customer.Email, models.KindCustomer, customer.ID); err != nil {
		log.Fatalf("Failed to claim email %s: %v", customer.Email, err)
	}
	if err := repos.Customers.Create(ctx, customer); err != nil {
		log.Fatalf("Failed to insert customer: %v", err)
	}

	fmt.Printf("Inserted %d workers and 1 customer (password %q)\n", counter-1, demoPassword)
}

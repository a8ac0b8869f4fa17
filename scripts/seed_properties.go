package main

import (
	"encoding/json"
	"fmt"
	"log"

	"stayhaven-server/models"
	"stayhaven-server/storage"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// Loads a demo host and a handful of properties for development.
func main() {
	storage.InitializeDB()

	password, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error hashing seed password: %v", err)
	}

	host := models.User{
		Username: "demo-host",
		Email:    "host@example.com",
		Password: string(password),
		Role:     "host",
	}
	if err := storage.DB.Where("email = ?", host.Email).FirstOrCreate(&host).Error; err != nil {
		log.Fatalf("Error creating seed host: %v", err)
	}

	seeds := []models.Property{
		{
			HostID: host.ID, Title: "Sunny downtown apartment", Description: "Bright two-bedroom close to everything.",
			City: "Lisbon", Country: "Portugal", PricePerNight: 120, MaxGuests: 4, Type: "apartment",
			Photos: mustJSON([]string{"https://example.com/photos/lisbon-1.jpg"}),
		},
		{
			HostID: host.ID, Title: "Cabin by the lake", Description: "Quiet woodland cabin with a private dock.",
			City: "Bergen", Country: "Norway", PricePerNight: 180, MaxGuests: 6, Type: "cabin",
			Photos: mustJSON([]string{"https://example.com/photos/bergen-1.jpg"}),
		},
		{
			HostID: host.ID, Title: "Villa with sea view", Description: "Clifftop villa, pool and three terraces.",
			City: "Santorini", Country: "Greece", PricePerNight: 450, MaxGuests: 8, Type: "villa",
			Photos: mustJSON([]string{"https://example.com/photos/santorini-1.jpg"}),
		},
	}

	for i := range seeds {
		seeds[i].Amenities = datatypes.JSON([]byte(`["wifi","kitchen"]`))
		if err := storage.DB.Where("host_id = ? AND title = ?", host.ID, seeds[i].Title).
			FirstOrCreate(&seeds[i]).Error; err != nil {
			log.Fatalf("Error seeding property %q: %v", seeds[i].Title, err)
		}
	}

	fmt.Printf("Seeded %d properties for host %s\n", len(seeds), host.Email)
}

func mustJSON(values []string) string {
	raw, err := json.Marshal(values)
	if err != nil {
		log.Fatalf("Error marshaling seed data: %v", err)
	}
	return string(raw)
}

// Command seed wipes and repopulates the resorts collection with the
// launch catalogue. Run it once against a fresh database:
//
//	go run ./scripts/seed
package main

import (
	"context"
	"log"
	"time"

	"hillescape/config"
	"hillescape/database"
	"hillescape/models"

	"go.mongodb.org/mongo-driver/bson"
)

var catalogue = []models.Resort{
	{
		ID:           1,
		Name:         "Deluxe Family Room",
		Location:     "Sholayar Dam City",
		Description:  "Our Deluxe Family Room offers spacious and comfortable accommodations perfect for families. It features a cozy seating area, a large bed, modern amenities, and a private bathroom.",
		Price:        2603,
		PriceDisplay: "₹2,603/night",
		Rating:       4.4,
		Reviews:      93,
		Image:        "/room1.jpg",
		Amenities:    []string{"Bathroom", "Bath or Shower", "Dining table", "WiFi", "Restaurant", "Flat-screen TV", "Mineral Water"},
		Tags:         []string{"Luxury", "Family Friendly", "Pet Friendly", "Spa", "Wellness"},
		Distance:     "2.5km from city center",
		Weather:      "18-24°C • Misty mornings",
		Season:       "Best: Oct-Mar",
		Special:      "Book 3 nights, get 1 free",
		Rooms:        []string{"Deluxe", "Premium", "Suite", "Villa"},
	},
	{
		ID:           2,
		Name:         "Deluxe Family Room (With Balcony)",
		Location:     "Sholayar Dam City",
		Description:  "Sustainable treehouse resort in the heart of untouched forests",
		Price:        2982,
		PriceDisplay: "₹2,982/night",
		Rating:       4.4,
		Reviews:      94,
		Image:        "/room2.jpg",
		Amenities:    []string{"Forest View", "Bird Watching", "Eco-friendly", "Open Balcony"},
		Tags:         []string{"Eco-Friendly", "Adventure", "Romantic", "Wildlife", "Nature"},
		Distance:     "Deep forest location",
		Weather:      "16-22°C • Dense fog",
		Season:       "Year-round",
		Special:      "Free guided nature walk",
		Rooms:        []string{"Treehouse", "Cabin", "Tent", "Family Suite"},
	},
	{
		ID:           3,
		Name:         "Valparai Emerald Resort & Spa",
		Location:     "Valparai",
		Description:  "5-star luxury resort amidst tea gardens with panoramic Anamalai hills view",
		Price:        4800,
		PriceDisplay: "₹4,800/night",
		Rating:       4.9,
		Reviews:      120,
		Image:        "https://images.unsplash.com/photo-1566073771259-6a8506099945?auto=format&fit=crop&w=800",
		Amenities:    []string{"Mountain View", "Spa", "Infinity Pool", "WiFi", "Restaurant", "Gym", "Parking"},
		Tags:         []string{"Luxury", "Family Friendly", "Spa", "Pool", "Fine Dining"},
		Distance:     "3km from Valparai town",
		Weather:      "15-22°C • Pleasant",
		Season:       "Oct-Apr",
		Special:      "Free spa treatment on 3-night stay",
		Rooms:        []string{"Deluxe", "Premium", "Suite", "Villa"},
	},
	{
		ID:           4,
		Name:         "Solaiyur Forest Canopy Resort",
		Location:     "Solaiyur",
		Description:  "Sustainable treehouse resort in the heart of untouched forests",
		Price:        4200,
		PriceDisplay: "₹4,200/night",
		Rating:       4.7,
		Reviews:      85,
		Image:        "https://images.unsplash.com/photo-1596394516093-501ba68a0ba6?auto=format&fit=crop&w=800",
		Amenities:    []string{"Forest View", "Campfire", "Trekking", "Bird Watching", "Eco-friendly", "Bonfire"},
		Tags:         []string{"Eco-Friendly", "Adventure", "Wildlife", "Nature", "Romantic"},
		Distance:     "Deep forest location",
		Weather:      "16-22°C • Dense fog",
		Season:       "Year-round",
		Special:      "Free guided nature walk",
		Rooms:        []string{"Treehouse", "Cabin", "Tent", "Family Suite"},
	},
	{
		ID:           5,
		Name:         "Kothagiri Sky Villas",
		Location:     "Kothagiri",
		Description:  "Modern luxury villas with breathtaking views of Nilgiri valley",
		Price:        5500,
		PriceDisplay: "₹5,500/night",
		Rating:       4.8,
		Reviews:      95,
		Image:        "https://images.unsplash.com/photo-1544551763-46a013bb70d5?auto=format&fit=crop&w=800",
		Amenities:    []string{"Valley View", "Private Pool", "Butler Service", "Fine Dining", "Spa", "Jacuzzi"},
		Tags:         []string{"Luxury", "Honeymoon", "Panoramic Views", "Private Pool", "Romantic"},
		Distance:     "5km from Kothagiri",
		Weather:      "12-20°C • Cool",
		Season:       "Nov-Feb",
		Special:      "Honeymoon package available",
		Rooms:        []string{"Villa", "Premium Villa", "Honeymoon Suite", "Executive Suite"},
	},
}

func main() {
	config.LoadConfig()
	database.InitDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	coll := database.DB().Collection("resorts")

	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("seed: failed to clear resorts: %v", err)
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(catalogue))
	for i := range catalogue {
		catalogue[i].CreatedAt = now
		docs = append(docs, catalogue[i])
	}

	res, err := coll.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("seed: failed to insert resorts: %v", err)
	}
	log.Printf("seed: inserted %d resorts", len(res.InsertedIDs))

	for _, r := range catalogue {
		log.Printf("seed:   #%d %s (%s) ₹%.0f/night", r.ID, r.Name, r.Location, r.Price)
	}

	if err := database.MongoClient.Disconnect(ctx); err != nil {
		log.Fatalf("seed: failed to disconnect: %v", err)
	}
}

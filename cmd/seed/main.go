package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hallbook/internal/config"
	"hallbook/internal/db"
	"hallbook/internal/hallbook"
)

// Loads the starter catalogue: venues, services with their providers, and
// FAQs. Run once against an empty database.
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx := context.Background()

	client, err := db.OpenMongo(ctx, cfg.Mongo.URI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		_ = client.Disconnect(ctx)
	}()

	repo := hallbook.NewRepository(client.Database(cfg.Mongo.Database))
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("ensure indexes")
	}

	for _, v := range venues() {
		if _, err := repo.CreateVenue(ctx, v); err != nil {
			log.Fatal().Err(err).Str("venue", v.Name).Msg("seed venue")
		}
	}
	log.Info().Int("count", len(venues())).Msg("venues seeded")

	for _, s := range services() {
		if _, err := repo.CreateService(ctx, s); err != nil {
			log.Fatal().Err(err).Str("service", s.Name).Msg("seed service")
		}
	}
	log.Info().Int("count", len(services())).Msg("services seeded")

	for _, f := range faqs() {
		if _, err := repo.CreateFAQ(ctx, f); err != nil {
			log.Fatal().Err(err).Str("question", f.Question).Msg("seed faq")
		}
	}
	log.Info().Int("count", len(faqs())).Msg("faqs seeded")
}

func venues() []hallbook.VenueInput {
	return []hallbook.VenueInput{
		{
			Name:        "R K Function Hall",
			Location:    "Bandlaguda Jagir",
			Pincode:     "500005",
			Coordinates: hallbook.Coordinates{Lat: 17.3616, Lng: 78.4747},
			Price:       40000,
			Capacity:    500,
			Images: []string{
				"https://images.unsplash.com/photo-1519167758481-83f550bb49b3?w=800",
				"https://images.unsplash.com/photo-1464366400600-7168b8af9bc3?w=800",
				"https://images.unsplash.com/photo-1511795409834-ef04bbd61622?w=800",
			},
			Amenities:   []string{"Air Conditioning", "Parking", "Sound System", "Stage", "Green Rooms"},
			Description: "Premium function hall perfect for weddings and grand celebrations in the heart of Bandlaguda Jagir.",
			Contact:     hallbook.ContactInfo{Phone: "+91 9876543210", Email: "rk.hall@example.com"},
		},
		{
			Name:        "Sri Lakshmi Convention",
			Location:    "Chandrayangutta",
			Pincode:     "500005",
			Coordinates: hallbook.Coordinates{Lat: 17.3580, Lng: 78.4820},
			Price:       35000,
			Capacity:    400,
			Images: []string{
				"https://images.unsplash.com/photo-1465495976277-4387d4b0e4a6?w=800",
				"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=800",
			},
			Amenities:   []string{"Air Conditioning", "Parking", "Catering Kitchen", "Decoration Support"},
			Description: "Elegant convention center with traditional architecture and modern facilities.",
			Contact:     hallbook.ContactInfo{Phone: "+91 9876543211", Email: "lakshmi.convention@example.com"},
		},
		{
			Name:        "Golden Palace Banquet",
			Location:    "Bandlaguda Jagir",
			Pincode:     "500005",
			Coordinates: hallbook.Coordinates{Lat: 17.3590, Lng: 78.4760},
			Price:       55000,
			Capacity:    800,
			Images: []string{
				"https://images.unsplash.com/photo-1516997121675-4c2d1684aa3e?w=800",
				"https://images.unsplash.com/photo-1464207687429-7505649dae38?w=800",
			},
			Amenities:   []string{"Air Conditioning", "Valet Parking", "Sound System", "Bridal Suite", "Photography Studio"},
			Description: "Luxury banquet hall with royal ambiance for your special occasions.",
			Contact:     hallbook.ContactInfo{Phone: "+91 9876543212", Email: "golden.palace@example.com"},
		},
		{
			Name:        "Marigold Gardens",
			Location:    "Chandrayangutta",
			Pincode:     "500005",
			Coordinates: hallbook.Coordinates{Lat: 17.3550, Lng: 78.4800},
			Price:       30000,
			Capacity:    300,
			Images: []string{
				"https://images.unsplash.com/photo-1470229722913-7c0e2dbbafd3?w=800",
			},
			Amenities:   []string{"Garden Setting", "Parking", "Sound System", "Outdoor Stage"},
			Description: "Beautiful garden venue perfect for intimate celebrations and outdoor ceremonies.",
			Contact:     hallbook.ContactInfo{Phone: "+91 9876543213", Email: "marigold.gardens@example.com"},
		},
	}
}

func services() []hallbook.ServiceInput {
	return []hallbook.ServiceInput{
		{
			Name: "Catering Services",
			Icon: "🍽️",
			Providers: []hallbook.ServiceProvider{
				{
					Name:       "Hyderabadi Biryani Caterers",
					Rating:     4.6,
					PriceRange: "₹250-400 per plate",
					Speciality: "Traditional Hyderabadi Cuisine",
					Services:   []string{"Hyderabadi Biryani", "Haleem", "Kebabs", "Traditional Sweets"},
					Contact:    hallbook.ContactInfo{Phone: "+91 9876543301", Email: "biryani.caterers@example.com"},
				},
				{
					Name:       "Royal Feast Catering",
					Rating:     4.4,
					PriceRange: "₹300-500 per plate",
					Speciality: "Multi-Cuisine",
					Services:   []string{"North Indian", "South Indian", "Continental", "Chinese"},
					Contact:    hallbook.ContactInfo{Phone: "+91 9876543302", Email: "royal.feast@example.com"},
				},
			},
		},
		{
			Name: "Decoration",
			Icon: "🎨",
			Providers: []hallbook.ServiceProvider{
				{
					Name:       "Floral Dreams Decor",
					Rating:     4.5,
					PriceRange: "₹15,000-50,000",
					Speciality: "Wedding Decorations",
					Services:   []string{"Stage Decoration", "Floral Arrangements", "Lighting", "Entrance Decor"},
					Contact:    hallbook.ContactInfo{Phone: "+91 9876543401", Email: "floral.dreams@example.com"},
				},
				{
					Name:       "Royal Events Decor",
					Rating:     4.3,
					PriceRange: "₹20,000-80,000",
					Speciality: "Luxury Events",
					Services:   []string{"Theme-based Decor", "LED Walls", "Custom Setups", "Photo Booths"},
					Contact:    hallbook.ContactInfo{Phone: "+91 9876543402", Email: "royal.events@example.com"},
				},
			},
		},
		{
			Name: "Photography",
			Icon: "📸",
			Providers: []hallbook.ServiceProvider{
				{
					Name:       "Wedding Moments Studio",
					Rating:     4.7,
					PriceRange: "₹25,000-75,000",
					Speciality: "Wedding Photography",
					Services:   []string{"Pre-Wedding Shoot", "Wedding Day Coverage", "Album Creation", "Video Editing"},
					Contact:    hallbook.ContactInfo{Phone: "+91 9876543501", Email: "wedding.moments@example.com"},
				},
			},
		},
		{
			Name: "Flowers",
			Icon: "🌸",
			Providers: []hallbook.ServiceProvider{
				{
					Name:       "Fresh Petals",
					Rating:     4.4,
					PriceRange: "₹5,000-25,000",
					Speciality: "Fresh Flower Arrangements",
					Services:   []string{"Bridal Bouquets", "Garlands", "Car Decoration", "Venue Flowers"},
					Contact:    hallbook.ContactInfo{Phone: "+91 9876543601", Email: "fresh.petals@example.com"},
				},
			},
		},
	}
}

func faqs() []hallbook.FAQInput {
	return []hallbook.FAQInput{
		{
			Question: "How do I book a function hall?",
			Answer:   "Simply browse through our map-based interface, select a hall that suits your needs, choose your date and services, and complete the booking with our one-click payment system.",
			Category: "booking",
			Order:    1,
		},
		{
			Question: "Can I cancel my booking?",
			Answer:   "Yes, you can cancel your booking. Full refund 7 days prior, 50% refund for 3-7 days, and no refund within 3 days of the event.",
			Category: "booking",
			Order:    2,
		},
		{
			Question: "What payment methods do you accept?",
			Answer:   "We accept UPI, credit cards, debit cards, and net banking through our secure Razorpay integration.",
			Category: "payment",
			Order:    3,
		},
		{
			Question: "Are the prices negotiable?",
			Answer:   "Our platform offers competitive prices that are already 10-20% lower than offline vendors. Prices are fixed to ensure transparency.",
			Category: "pricing",
			Order:    4,
		},
		{
			Question: "Do you provide catering services?",
			Answer:   "Yes, we offer various catering services including traditional Hyderabadi cuisine, multi-cuisine options, and customized menus.",
			Category: "services",
			Order:    5,
		},
		{
			Question: "How can I contact the venue directly?",
			Answer:   "Once you book a venue, you will receive the venue contact details for direct coordination.",
			Category: "support",
			Order:    6,
		},
	}
}

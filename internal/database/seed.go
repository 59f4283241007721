// internal/database/seed.go
package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/visioncraft/visioncraft-backend/internal/models"
)

// SeedInitialData loads the demo catalog: two customers, three artisan
// sellers, six artworks and four events. It is a no-op when users exist.
func SeedInitialData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount > 0 {
		logrus.Info("Database already seeded")
		return nil
	}

	logrus.Info("Seeding initial data...")

	customers := []*models.User{
		{
			Username: "demo_customer",
			Email:    "customer@visioncraft.com",
			Role:     models.UserRoleCustomer,
			Bio:      "Art enthusiast and collector",
			Phone:    "+91 98765 43210",
			Location: "Mumbai, Maharashtra",
		},
		{
			Username: "art_lover",
			Email:    "artlover@example.com",
			Role:     models.UserRoleCustomer,
			Bio:      "Supporting local artisans",
			Phone:    "+91 88888 99999",
			Location: "Delhi, India",
		},
	}

	sellers := []*models.User{
		{
			Username: "sanjay_potter",
			Email:    "sanjay@craftmakers.com",
			Role:     models.UserRoleSeller,
			Bio:      "Traditional potter from Rajasthan with 20 years of experience",
			Phone:    "+91 97654 32100",
			Location: "Jaipur, Rajasthan",
		},
		{
			Username: "priya_woodcraft",
			Email:    "priya@woodartisans.com",
			Role:     models.UserRoleSeller,
			Bio:      "Skilled woodcraft artist specializing in Channapatna toys",
			Phone:    "+91 98111 22333",
			Location: "Bangalore, Karnataka",
		},
		{
			Username: "lakshmi_painter",
			Email:    "lakshmi@madhubani.com",
			Role:     models.UserRoleSeller,
			Bio:      "Madhubani folk artist from Bihar, preserving ancient traditions",
			Phone:    "+91 99900 11122",
			Location: "Patna, Bihar",
		},
	}

	for _, u := range customers {
		if err := u.SetPassword("password123"); err != nil {
			return fmt.Errorf("failed to set password: %w", err)
		}
	}
	for _, u := range sellers {
		if err := u.SetPassword("seller123"); err != nil {
			return fmt.Errorf("failed to set password: %w", err)
		}
	}

	users := append(customers, sellers...)
	for _, u := range users {
		if err := db.Create(u).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.Username, err)
		}
	}

	artworks := []*models.Artwork{
		{
			UserID:        sellers[0].ID,
			Title:         "Terracotta Pot of Marwar",
			ArtistName:    "Sanjay Varma",
			Price:         299,
			Image:         "/static/images/pottery.jpg",
			ModelURL:      "/static/models/pottery.glb",
			Category:      "Pottery",
			Rating:        4.8,
			Description:   "Handmade terracotta pot from Rajasthan, featuring traditional Marwari motifs. Ideal for rustic decor.",
			State:         "Rajasthan",
			MakingProcess: "Traditional clay molding and hand-painting technique passed down through generations",
			Views:         1247,
			StockQuantity: 15,
			IsActive:      true,
		},
		{
			UserID:        sellers[0].ID,
			Title:         "Himalayan Bamboo Basket",
			ArtistName:    "Tenzin Gyatso",
			Price:         349,
			Image:         "/static/images/basket.jpg",
			ModelURL:      "/static/models/basket.glb",
			Category:      "Weaving",
			Rating:        4.9,
			Description:   "Eco-friendly, hand-woven bamboo basket from the foothills of Assam. Durable and lightweight.",
			State:         "Assam",
			MakingProcess: "Traditional bamboo weaving technique from the tribes of Northeast India",
			Views:         1534,
			StockQuantity: 10,
			IsActive:      true,
		},
		{
			UserID:        sellers[1].ID,
			Title:         "Bronze Ganesha Sculpture",
			ArtistName:    "Ramesh Patel",
			Price:         1599,
			Image:         "/static/images/ganesha.png",
			ModelURL:      "/static/models/ganesha.glb",
			Category:      "Sculpture",
			Rating:        5.0,
			Description:   "Exquisite bronze sculpture of Lord Ganesha, handcrafted using ancient lost-wax casting technique.",
			State:         "Tamil Nadu",
			MakingProcess: "Ancient lost-wax bronze casting technique from Thanjavur",
			Views:         2156,
			StockQuantity: 5,
			IsActive:      true,
		},
		{
			UserID:        sellers[1].ID,
			Title:         "Temple Bell (Ghanti)",
			ArtistName:    "Krishna Moorthy",
			Price:         459,
			Image:         "/static/images/bell.png",
			ModelURL:      "/static/models/bell.glb",
			Category:      "Metalwork",
			Rating:        4.8,
			Description:   "Brass temple bell with melodious sound, handcrafted in traditional South Indian style.",
			State:         "Kerala",
			MakingProcess: "Traditional bell metal casting from Kerala's Aranmula region",
			Views:         1456,
			StockQuantity: 18,
			IsActive:      true,
		},
		{
			UserID:        sellers[2].ID,
			Title:         "Blue Pottery Vase",
			ArtistName:    "Mohan Joshi",
			Price:         749,
			Image:         "/static/images/blue_vase.jpeg",
			ModelURL:      "/static/models/blue_vase.glb",
			Category:      "Pottery",
			Rating:        4.7,
			Description:   "Stunning blue pottery vase from Jaipur with Persian-inspired floral motifs.",
			State:         "Rajasthan",
			MakingProcess: "Jaipur blue pottery with Persian-inspired glazing techniques",
			Views:         1923,
			StockQuantity: 11,
			IsActive:      true,
		},
		{
			UserID:        sellers[2].ID,
			Title:         "Handcrafted Cane Chair",
			ArtistName:    "Joseph D'Souza",
			Price:         3299,
			Image:         "/static/images/chair.png",
			ModelURL:      "/static/models/chair.glb",
			Category:      "Furniture",
			Rating:        4.5,
			Description:   "Ergonomic cane chair with contemporary design, perfect blend of comfort and aesthetics.",
			State:         "Goa",
			MakingProcess: "Traditional cane and bamboo furniture making from Goa",
			Views:         876,
			StockQuantity: 4,
			IsActive:      true,
		},
	}

	for _, a := range artworks {
		if err := db.Create(a).Error; err != nil {
			return fmt.Errorf("failed to create artwork %s: %w", a.Title, err)
		}
	}

	events := []*models.Event{
		{
			Title:       "Jaipur Craft Fair",
			EventType:   models.EventTypeFair,
			EventDate:   time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC),
			EventTime:   "10:00 AM",
			Location:    "Jaipur, Rajasthan",
			Address:     "Rava Bazaar Grounds",
			Description: "Explore hundreds of artisan stalls, live demos, and regional food courts.",
			Tags:        "Pottery,Textiles,Folk Art",
			IsActive:    true,
		},
		{
			Title:       "Hands-on Pottery Workshop",
			EventType:   models.EventTypeWorkshop,
			EventDate:   time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC),
			EventTime:   "02:00 PM",
			Location:    "Pune, Maharashtra",
			Address:     "Kala Studio, FC Road",
			Description: "Learn wheel throwing and glazing basics with master potter Meera Kulkarni.",
			Tags:        "Pottery,Beginner Friendly",
			IsActive:    true,
		},
		{
			Title:       "Textile Natural Dyeing Class",
			EventType:   models.EventTypeClass,
			EventDate:   time.Date(2025, 10, 25, 0, 0, 0, 0, time.UTC),
			EventTime:   "11:00 AM",
			Location:    "New Delhi, Delhi",
			Address:     "Dilli Haat, INA",
			Description: "Hands-on introduction to indigo and madder dyeing with sustainable techniques.",
			Tags:        "Textiles,Eco",
			IsActive:    true,
		},
		{
			Title:       "Channapatna Toys Showcase",
			EventType:   models.EventTypeExhibition,
			EventDate:   time.Date(2025, 10, 28, 0, 0, 0, 0, time.UTC),
			EventTime:   "04:00 PM",
			Location:    "Bengaluru, Karnataka",
			Address:     "Crafts Museum, MG Road",
			Description: "Meet woodcraft artisans, try your hand at eco-friendly lacquering.",
			Tags:        "Woodcraft,Family",
			IsActive:    true,
		},
	}

	for _, e := range events {
		if err := db.Create(e).Error; err != nil {
			return fmt.Errorf("failed to create event %s: %w", e.Title, err)
		}
	}

	logrus.Info("Initial data seeding completed")
	return nil
}

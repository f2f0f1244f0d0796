package catalog

import (
	"time"

	"github.com/magabrotheeeer/portfolio-showcase/internal/models"
)

// seedStep — шаг времени создания между соседними демо-записями.
const seedStep = 100_000 // мс

func seedProjects(now time.Time) []models.Project {
	at := func(i int) int64 { return now.UnixMilli() - int64(i)*seedStep }
	img := func(photo string) string {
		return "https://images.unsplash.com/" + photo + "?auto=format&fit=crop&w=1000&q=80"
	}

	return []models.Project{
		{
			ID:               "1",
			Title:            "House of Gains Gym",
			Category:         models.CategoryGym,
			ShortDescription: "Modern fitness center website designed to drive membership signups.",
			FullDescription:  "A comprehensive website for House of Gains Gym. Features include a detailed gallery, membership pricing tables, and direct WhatsApp integration for potential member inquiries. Fully responsive and optimized for local SEO.",
			ImageURL:         img("photo-1534438327276-14e5300c3a48"),
			Gallery:          []string{img("photo-1534438327276-14e5300c3a48")},
			Technologies:     []string{"React", "Tailwind CSS", "Vercel"},
			Features:         []string{"Responsive Design", "Membership Plans", "Contact Form"},
			DemoURL:          "https://house-of-gains-gym-website.vercel.app/",
			CreatedAt:        at(0),
		},
		{
			ID:               "2",
			Title:            "J7 Fitness",
			Category:         models.CategoryGym,
			ShortDescription: "High-energy gym landing page with class schedules and trainer profiles.",
			FullDescription:  "J7 Fitness needed a digital presence that matched their high-energy atmosphere. This site showcases their facilities, introduces their trainers, and allows users to easily find location and contact details.",
			ImageURL:         img("photo-1593079831268-3381b0db4a77"),
			Gallery:          []string{img("photo-1593079831268-3381b0db4a77")},
			Technologies:     []string{"HTML5", "CSS3", "JavaScript"},
			Features:         []string{"Class Schedule", "Trainer Portfolio", "Mobile Optimized"},
			DemoURL:          "https://j7-fitness.vercel.app/",
			CreatedAt:        at(1),
		},
		{
			ID:               "3",
			Title:            "Mobile Shop Gold",
			Category:         models.CategoryRetail,
			ShortDescription: "E-commerce showcase for a mobile phone and accessories store.",
			FullDescription:  "A clean and professional product catalog for a local mobile shop. Customers can browse available phones, view specifications, and contact the store directly via WhatsApp to purchase.",
			ImageURL:         img("photo-1592890288564-76628a30a657"),
			Gallery:          []string{img("photo-1592890288564-76628a30a657")},
			Technologies:     []string{"React", "E-commerce UI", "Responsive"},
			Features:         []string{"Product Catalog", "WhatsApp Checkout", "Search Functionality"},
			DemoURL:          "https://mobile-shop-gold.vercel.app/",
			CreatedAt:        at(2),
		},
		{
			ID:               "4",
			Title:            "Rox Chatting App",
			Category:         models.CategoryOther,
			ShortDescription: "Real-time messaging application with a modern interface.",
			FullDescription:  "A fully functional real-time chatting application. Supports user authentication, real-time message delivery, and a sleek dark/light mode interface. Demonstrates capability in building complex web applications.",
			ImageURL:         img("photo-1611606063065-ee7946f0787a"),
			Gallery:          []string{img("photo-1611606063065-ee7946f0787a")},
			Technologies:     []string{"React", "Firebase", "Real-time DB"},
			Features:         []string{"Real-time Messaging", "User Auth", "Modern UI"},
			DemoURL:          "https://rox-chatting-app.vercel.app/",
			CreatedAt:        at(3),
		},
	}
}

func seedApps(now time.Time) []models.MobileApp {
	at := func(i int) int64 { return now.UnixMilli() - int64(i)*seedStep }

	return []models.MobileApp{
		{
			ID:          "app-1",
			Name:        "GymPass QR",
			Tagline:     "Contactless gym entry and membership tracking.",
			Description: "Members check in with a QR code, see their plan status and book classes. Built for House of Gains Gym.",
			IconURL:     "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?auto=format&fit=crop&w=256&q=80",
			Screenshots: []string{"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?auto=format&fit=crop&w=600&q=80"},
			Rating:      4.7,
			Downloads:   "1k+",
			Size:        "18 MB",
			Category:    "Health & Fitness",
			DownloadURL: "https://play.google.com/store",
			CreatedAt:   at(0),
		},
		{
			ID:          "app-2",
			Name:        "Rox Chat",
			Tagline:     "Real-time messaging with dark mode.",
			Description: "Mobile client for the Rox chatting platform: instant delivery, group rooms and push notifications.",
			IconURL:     "https://images.unsplash.com/photo-1611606063065-ee7946f0787a?auto=format&fit=crop&w=256&q=80",
			Screenshots: []string{"https://images.unsplash.com/photo-1611606063065-ee7946f0787a?auto=format&fit=crop&w=600&q=80"},
			Rating:      4.5,
			Downloads:   "5k+",
			Size:        "24 MB",
			Category:    "Communication",
			DownloadURL: "https://play.google.com/store",
			CreatedAt:   at(1),
		},
	}
}

package main

import (
	"log"

	"learnhub/config"
	"learnhub/database"
	"learnhub/models"

	"golang.org/x/crypto/bcrypt"
)

type seedCourse struct {
	Title       string
	Description string
	Price       float64
	Image       string
	Instructor  string
	Category    string
}

var sampleCourses = []seedCourse{
	{"Python for Data Science", "Master Python with data analysis libraries.", 19.99, "https://images.unsplash.com/photo-1526379095098-d400fd0bf935?w=600&q=80", "Jose Portilla", "Development"},
	{"The Complete JavaScript Course", "Modern JavaScript from the beginning.", 29.99, "https://images.unsplash.com/photo-1579468118864-1b9ea3c0db4a?w=600&q=80", "Jonas Schmedtmann", "Development"},
	{"Figma UI/UX Design Essentials", "Learn to design mobile and web apps.", 49.99, "https://images.unsplash.com/photo-1559028012-481c04fa702d?w=600&q=80", "Gary Simon", "Design"},
	{"Machine Learning A-Z", "Hands-on Python & R In Data Science.", 89.99, "https://images.unsplash.com/photo-1527474305487-b87b222841cc?w=600&q=80", "Kirill Eremenko", "IT & Software"},
	{"Digital Marketing Masterclass", "SEO, Social Media, Email Marketing.", 12.99, "https://images.unsplash.com/photo-1557838923-2985c318be48?w=600&q=80", "Phil Ebiner", "Marketing"},
	{"React - The Complete Guide", "Hooks, React Router, Redux.", 39.99, "https://images.unsplash.com/photo-1633356122544-f134324a6cee?w=600&q=80", "Maximilian Schwarzmüller", "Development"},
	{"Investing in Stocks", "The complete course on stock market.", 44.99, "https://images.unsplash.com/photo-1590283603385-17ffb3a7f29f?w=600&q=80", "Steve Ballinger", "Finance"},
	{"Portrait Photography", "Take stunning photos of people.", 24.99, "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?w=600&q=80", "Jessica Kobeissi", "Photography"},
	{"Public Speaking Mastery", "Give unforgettable presentations.", 15.99, "https://images.unsplash.com/photo-1475721027767-f753c9138d77?w=600&q=80", "Chris Haroun", "Personal Development"},
	{"Cyber Security for Beginners", "Learn to protect your digital life.", 59.99, "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?w=600&q=80", "Nathan House", "IT & Software"},
	{"Docker & Kubernetes", "The practical guide to DevOps.", 34.99, "https://images.unsplash.com/photo-1605745341112-85968b19335b?w=600&q=80", "Stephen Grider", "Development"},
	{"Game Design with Unity", "Create your first 3D game.", 49.99, "https://images.unsplash.com/photo-1556438050-bf886e5e25a2?w=600&q=80", "Ben Tristem", "Development"},
	{"PostgreSQL Bootcamp", "From beginner to advanced SQL.", 19.99, "https://images.unsplash.com/photo-1555099962-4199c345e5dd?w=600&q=80", "Colt Steele", "Development"},
	{"Adobe Illustrator CC", "Master vector graphic design.", 29.99, "https://images.unsplash.com/photo-1572044162444-ad6021105507?w=600&q=80", "Dan Scott", "Design"},
	{"Cryptocurrency Fundamentals", "Buy, sell, and trade crypto.", 39.99, "https://images.unsplash.com/photo-1518546305927-5a555bb7020d?w=600&q=80", "George Levy", "Finance"},
}

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	log.Println("Seeding database...")

	// Create Admin User
	var admin models.User
	if err := db.Where("email = ?", "admin@learnhub.com").First(&admin).Error; err != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin123"), config.AppConfig.SaltRound)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}

		admin = models.User{
			Name:     "Admin User",
			Email:    "admin@learnhub.com",
			Password: string(hashedPassword),
			Role:     models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Println("Admin user created.")
	}

	// Seed Courses
	created := 0
	for _, sample := range sampleCourses {
		var existing models.Course
		if err := db.Where("title = ?", sample.Title).First(&existing).Error; err == nil {
			continue
		}

		course := models.Course{
			Title:       sample.Title,
			Description: sample.Description,
			Price:       sample.Price,
			ImageURL:    sample.Image,
			Instructor:  sample.Instructor,
			Category:    sample.Category,
		}
		if err := db.Create(&course).Error; err != nil {
			log.Fatalf("Failed to create course %q: %v", sample.Title, err)
		}

		// Add sample content
		content := models.Content{
			CourseID: course.ID,
			Title:    "Introduction",
			Type:     models.ContentTypeVideo,
			URL:      "https://www.youtube.com/embed/dQw4w9WgXcQ",
		}
		if err := db.Create(&content).Error; err != nil {
			log.Fatalf("Failed to create content for %q: %v", sample.Title, err)
		}
		created++
	}

	log.Printf("Seeding complete. %d courses created.", created)
}

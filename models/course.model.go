package models

import "gorm.io/gorm"

// Course represents a purchasable course in the catalog
type Course struct {
	gorm.Model
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price" gorm:"default:0"`
	ImageURL    string  `json:"image_url"`
	Instructor  string  `json:"instructor"`
	Category    string  `json:"category"`
}

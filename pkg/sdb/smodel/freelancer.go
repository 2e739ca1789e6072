package smodel

import (
	"encoding/json"
	"time"
)

type Freelancer struct {
	ID              int       `json:"id"`
	UserID          int       `json:"user_id" gorm:"uniqueIndex"`
	User            *User     `json:"user" gorm:"foreignKey:UserID;references:ID"`
	ProfilePicture  string    `json:"profile_picture"`
	PhoneNumber     string    `json:"phone_number"`
	Description     string    `json:"description"`
	Skills          string    `json:"skills"`
	Categories      string    `json:"categories"`
	City            string    `json:"city"`
	Wilaya          string    `json:"wilaya"`
	YearsExperience int       `json:"years_experience"`
	NationalID      string    `json:"national_id"`
	SocialLinks     string    `json:"social_links"`
	Rate            float64   `json:"rate"`
	Education       string    `json:"education"`
	CCPAccount      string    `json:"ccp_account"`
	BaridAccount    string    `json:"barid_account"`
	CVPath          string    `json:"cv_path"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Skills and Categories are stored as JSON arrays of names.

func (f Freelancer) GetSkills() ([]string, error) {
	return decodeStringList(f.Skills)
}

func (f Freelancer) GetCategories() ([]string, error) {
	return decodeStringList(f.Categories)
}

func decodeStringList(encoded string) ([]string, error) {
	if encoded == "" {
		return nil, nil
	}
	var items []string
	err := json.Unmarshal([]byte(encoded), &items)
	return items, err
}

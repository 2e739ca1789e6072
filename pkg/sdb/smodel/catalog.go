package smodel

import "time"

type FAQ struct {
	ID        int       `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

type Skill struct {
	ID   int    `json:"id"`
	Name string `json:"name" gorm:"uniqueIndex"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

package models

import "time"

type Category struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Slug         string    `json:"slug"`
	Image        string    `json:"image"`
	ParentID     *int      `json:"parentId"`
	IsActive     bool      `json:"isActive"`
	SortOrder    int       `json:"sortOrder"`
	ProductCount int       `json:"productCount"` // denormalized, not maintained by product mutations
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CategoryNode is a category with its resolved children, built on read.
type CategoryNode struct {
	Category
	Children []CategoryNode `json:"children"`
}

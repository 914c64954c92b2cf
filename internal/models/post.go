package models

import "time"

// Post is a single blog entry. AuthorID is set once at creation and never
// reassigned.
type Post struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Title     string    `gorm:"not null"`
	Content   string    `gorm:"type:text;not null"`
	AuthorID  string    `gorm:"type:varchar(36);index:idx_post_author;not null"`
	Author    User      `gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Post) TableName() string { return "posts" }

// PostAuthor is the public projection of a post's author.
type PostAuthor struct {
	Name string `json:"name"`
}

// PostView is a post joined with the author's public name, as returned by
// the read endpoints.
type PostView struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Author    PostAuthor `json:"author"`
	CreatedAt time.Time  `json:"created_at"`
}

// Package entity contains the core business objects of the project.
package entity

import "time"

// DonorComment is an append-only encouragement message shown on the public
// testimonial feed. Comments are never edited or deleted.
type DonorComment struct {
	ID        string    // Opaque document identifier.
	DonorID   string    // Identity of the donor who wrote the comment.
	DonorName string    // Display name, denormalized for the feed.
	Comment   string    // Non-empty message text.
	CreatedAt time.Time // Server-assigned creation timestamp.
}

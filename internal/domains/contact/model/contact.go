package model

import "time"

// ContactMessage is a message submitted through the public contact form.
// Read is a one-way flag flipped by an admin; it never goes back to false.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemID implements content.Item.
func (m ContactMessage) ItemID() string { return m.ID }

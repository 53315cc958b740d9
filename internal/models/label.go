package models

import "time"

// Label represents a named, colored tag that can be attached to tasks.
// The name is the identity; the color is opaque display data.
type Label struct {
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

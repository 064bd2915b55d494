package model

import "time"

// Room represents a physical hotel room.  Rooms belong to a category
// that determines their price and capacity.  A room may be taken out
// of service by clearing IsActive, which removes it from availability
// results without touching historical reservations.
//
// Fields:
//  ID         – primary key identifier.
//  CategoryID – category the room belongs to.
//  Number     – unique human-facing room number (e.g. "204").
//  Floor      – floor the room is located on.
//  Notes      – internal housekeeping notes, not exposed publicly.
//  IsActive   – whether the room can be reserved.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Room struct {
	ID         uint64    `json:"id"`          // rooms.id
	CategoryID uint64    `json:"category_id"` // rooms.category_id
	Number     string    `json:"number"`      // rooms.number
	Floor      uint32    `json:"floor"`       // rooms.floor
	Notes      string    `json:"notes"`       // rooms.notes
	IsActive   bool      `json:"is_active"`   // rooms.is_active
	CreatedAt  time.Time `json:"created_at"`  // rooms.created_at
	UpdatedAt  time.Time `json:"updated_at"`  // rooms.updated_at
}

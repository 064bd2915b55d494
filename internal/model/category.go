package model

import "time"

// RoomCategory groups rooms that share pricing and capacity
// characteristics (e.g. "Doble", "Suite").  Categories are managed by
// administrators and referenced by rooms via CategoryID.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – unique category name.
//  Description   – free-form description shown on the landing page.
//  Capacity      – maximum number of guests per room.
//  PriceCents    – nightly price in cents for rooms of this category.
//  IsActive      – whether the category is offered to customers.
//  CreatedAt     – creation timestamp.
//  UpdatedAt     – last update timestamp.
type RoomCategory struct {
	ID          uint64    `json:"id"`          // room_categories.id
	Name        string    `json:"name"`        // room_categories.name
	Description string    `json:"description"` // room_categories.description
	Capacity    uint32    `json:"capacity"`    // room_categories.capacity
	PriceCents  uint32    `json:"price_cents"` // room_categories.price_cents
	IsActive    bool      `json:"is_active"`   // room_categories.is_active
	CreatedAt   time.Time `json:"created_at"`  // room_categories.created_at
	UpdatedAt   time.Time `json:"updated_at"`  // room_categories.updated_at
}

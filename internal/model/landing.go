package model

import "time"

// LandingSection is a block of CMS-style content rendered on the
// public landing page (hero text, about section, gallery captions...).
// Sections are ordered by Position and hidden by clearing IsActive.
//
// Fields:
//  ID        – primary key identifier.
//  Slug      – unique machine name (e.g. "hero", "about").
//  Title     – section heading.
//  Body      – section body, HTML or markdown as the frontend expects.
//  ImageURL  – optional illustration URL.
//  Position  – ascending render order.
//  IsActive  – whether the section is published.
//  UpdatedAt – last update timestamp.
type LandingSection struct {
	ID        uint64    `json:"id"`         // landing_sections.id
	Slug      string    `json:"slug"`       // landing_sections.slug
	Title     string    `json:"title"`      // landing_sections.title
	Body      string    `json:"body"`       // landing_sections.body
	ImageURL  string    `json:"image_url"`  // landing_sections.image_url
	Position  uint32    `json:"position"`   // landing_sections.position
	IsActive  bool      `json:"is_active"`  // landing_sections.is_active
	UpdatedAt time.Time `json:"updated_at"` // landing_sections.updated_at
}

package engine

import (
	"github.com/google/uuid"
)

// Entity is a car carrying a word along the travel axis
// Created by SpawnSystem, moved by MotionSystem, destroyed on exit or full match
type Entity struct {
	ID       uuid.UUID
	Word     string
	Position float64 // Travel axis offset, decreases toward the exit
	Slot     float64 // Cross axis offset, fixed for the car's lifetime
}

// NewEntity creates a car with a fresh id
func NewEntity(word string, position, slot float64) *Entity {
	return &Entity{
		ID:       uuid.New(),
		Word:     word,
		Position: position,
		Slot:     slot,
	}
}

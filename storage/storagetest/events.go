// Package storagetest holds the contract suite every Store backend must
// pass, plus the domain events the suite is written in terms of.
package storagetest

import (
	"time"
)

// HabitEvent is the domain event used by the contract suite.
type HabitEvent struct {
	Name    string
	HabitID string
	User    string
	Data    map[string]any
	At      time.Time
}

func (e HabitEvent) EventName() string      { return e.Name }
func (e HabitEvent) AggregateID() string    { return e.HabitID }
func (e HabitEvent) AggregateType() string  { return "Habit" }
func (e HabitEvent) Payload() map[string]any { return e.Data }
func (e HabitEvent) OccurredAt() time.Time  { return e.At }
func (e HabitEvent) UserID() string         { return e.User }

// Created returns a HabitCreatedEvent for the habit.
func Created(habitID string) HabitEvent {
	return HabitEvent{
		Name:    "HabitCreatedEvent",
		HabitID: habitID,
		Data:    map[string]any{"habitId": habitID},
	}
}

// Completed returns a HabitCompletedEvent for the habit.
func Completed(habitID string) HabitEvent {
	return HabitEvent{
		Name:    "HabitCompletedEvent",
		HabitID: habitID,
		Data:    map[string]any{"habitId": habitID},
	}
}

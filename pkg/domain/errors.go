package domain

import "errors"

// ErrEmptyIncident is returned when a generation is submitted without incident text.
var ErrEmptyIncident = errors.New("incident description is required")

// ErrInvalidLevel is returned when the analysis level cannot be parsed as a number.
var ErrInvalidLevel = errors.New("analysis level must be a number")

// ErrGenerationInFlight is returned when a generation is submitted while a
// previous one for the same session is still loading.
var ErrGenerationInFlight = errors.New("generation already in flight")

// ErrNoDiagram is returned when an export is requested before any successful generation.
var ErrNoDiagram = errors.New("no diagram has been generated yet")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

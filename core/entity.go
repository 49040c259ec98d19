package core

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/sentry/vmath"
)

//go:generate go tool mockgen -destination=./mocks/core_mock.go -package=mocks . Entity,Launcher,QueryProvider,Volume,Pivot

// EntityID identifies a battle entity across ticks
type EntityID = uuid.UUID

// NewEntityID returns a fresh random entity id
func NewEntityID() EntityID {
	return uuid.New()
}

// Entity is the battle entity view the turret consumes
// The turret never mutates an entity
type Entity interface {
	ID() EntityID
	IsAlive() bool
	TeamID() int
	Position() vmath.Vec3F
}

// IsHostile reports whether e is a live entity on a team other than team
func IsHostile(e Entity, team int) bool {
	return e != nil && e.IsAlive() && e.TeamID() != team
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type ProjectStatus string

const (
	StatusDraft      ProjectStatus = "draft"
	StatusPlanned    ProjectStatus = "planned"
	StatusInProgress ProjectStatus = "in_progress"
	StatusCompleted  ProjectStatus = "completed"
	StatusCancelled  ProjectStatus = "cancelled"
)

func ValidStatus(s ProjectStatus) bool {
	switch s {
	case StatusDraft, StatusPlanned, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Project struct {
	gorm.Model

	Title       string        `gorm:"not null;size:100"`
	Description string        `gorm:"size:1000"`
	Location    string        `gorm:"size:200"`
	ShootDate   *time.Time    `gorm:"type:date"`
	Status      ProjectStatus `gorm:"not null;size:20;default:draft"`
	OwnerID     uint          `gorm:"not null;index"`

	// Relationships
	Owner              User                `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ProjectMemberships []ProjectMembership `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

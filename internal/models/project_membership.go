package models

import (
	"time"

	"gorm.io/gorm"
)

// ProjectMembership is an invitation while AcceptedAt is null and a full
// membership once it is set. The unique index is the authoritative guard
// against duplicate invites; application-level existence checks are a
// fast path only.
type ProjectMembership struct {
	gorm.Model

	ProjectID  uint       `gorm:"not null;uniqueIndex:idx_project_user"`
	UserID     uint       `gorm:"not null;uniqueIndex:idx_project_user"`
	InvitedAt  time.Time  `gorm:"not null"`
	AcceptedAt *time.Time `gorm:"index"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (m *ProjectMembership) Accepted() bool {
	return m.AcceptedAt != nil
}

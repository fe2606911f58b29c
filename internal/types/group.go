package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"
)

// Group is a named role record in the authorization subsystem. Groups are
// only ever created by the seeder; nothing in this tool updates or deletes
// them. Uniqueness is enforced by name.
type Group struct {
  ID                  uuid.UUID                 `gorm:"type:uuid;primaryKey" json:"id"`

  Name                string                    `gorm:"uniqueIndex;not null;column:name" json:"name"`

  CreatedAt           time.Time                 `gorm:"not null" json:"createdAt"`
  UpdatedAt           time.Time                 `gorm:"not null" json:"updatedAt"`
}

func (g *Group) BeforeCreate(tx *gorm.DB) error {
  if g.ID == uuid.Nil {
    g.ID = uuid.New()
  }
  return nil
}

func (Group) TableName() string {
  return "group"
}

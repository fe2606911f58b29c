package types

import (
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
)

// DynamicSection groups configurable fields for one area of the app
// (for example the "accounts" section backing accounts.Account).
type DynamicSection struct {
  ID                  uuid.UUID                 `gorm:"type:uuid;primaryKey" json:"id"`
  Fields              []*DynamicField           `gorm:"foreignKey:SectionID" json:"fields,omitempty"`

  Name                string                    `gorm:"uniqueIndex;not null;column:name" json:"name"`
  DisplayName         string                    `gorm:"column:display_name" json:"displayName"`
  Description         string                    `gorm:"column:description" json:"description"`
  IsCoreSection       bool                      `gorm:"not null;default:false;column:is_core_section" json:"isCoreSection"`
  SourceModel         string                    `gorm:"column:source_model" json:"sourceModel"`
  SortOrder           uint                      `gorm:"not null;default:0;column:sort_order" json:"sortOrder"`

  CreatedAt           time.Time                 `gorm:"not null" json:"createdAt"`
  UpdatedAt           time.Time                 `gorm:"not null" json:"updatedAt"`
}

func (s *DynamicSection) BeforeCreate(tx *gorm.DB) error {
  if s.ID == uuid.Nil {
    s.ID = uuid.New()
  }
  return nil
}

func (DynamicSection) TableName() string {
  return "dynamic_section"
}

// DynamicField is one configurable field inside a section. Choice fields
// carry their allowed values in the Choices JSON column as a
// value-to-display-label map.
type DynamicField struct {
  ID                  uuid.UUID                 `gorm:"type:uuid;primaryKey" json:"id"`
  SectionID           uuid.UUID                 `gorm:"type:uuid;index;not null;uniqueIndex:idx_dynamic_field_section_name" json:"sectionID"`
  Section             *DynamicSection           `gorm:"foreignKey:SectionID;references:ID" json:"section,omitempty"`

  Name                string                    `gorm:"not null;uniqueIndex:idx_dynamic_field_section_name;column:name" json:"name"`
  DisplayName         string                    `gorm:"column:display_name" json:"displayName"`
  FieldType           string                    `gorm:"not null;column:field_type" json:"fieldType"`
  IsCoreField         bool                      `gorm:"not null;default:false;column:is_core_field" json:"isCoreField"`
  Required            bool                      `gorm:"not null;default:false;column:required" json:"required"`
  IsActive            bool                      `gorm:"not null;default:true;column:is_active" json:"isActive"`
  SortOrder           uint                      `gorm:"not null;default:0;column:sort_order" json:"sortOrder"`
  Choices             datatypes.JSON            `gorm:"column:choices" json:"choices,omitempty"`
  HelpText            string                    `gorm:"column:help_text" json:"helpText"`

  CreatedAt           time.Time                 `gorm:"not null" json:"createdAt"`
  UpdatedAt           time.Time                 `gorm:"not null" json:"updatedAt"`
}

func (f *DynamicField) BeforeCreate(tx *gorm.DB) error {
  if f.ID == uuid.Nil {
    f.ID = uuid.New()
  }
  return nil
}

func (DynamicField) TableName() string {
  return "dynamic_field"
}

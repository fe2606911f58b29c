package types

import (
  "time"
)

// CancellationReason mirrors the legacy settings_cancellationreason table.
// The admin tool never inserts, updates, or deletes rows here; the model
// exists so migrations and the sequence repair agree on the schema. The id
// column is backed by the serial sequence settings_cancellationreason_id_seq.
type CancellationReason struct {
  ID                  uint                      `gorm:"primaryKey;autoIncrement" json:"id"`

  Code                string                    `gorm:"size:50;uniqueIndex;not null;column:code" json:"code"`
  Label               string                    `gorm:"size:200;not null;column:label" json:"label"`
  IsRefundable        bool                      `gorm:"not null;default:false;column:is_refundable" json:"isRefundable"`
  Active              bool                      `gorm:"not null;default:true;column:active" json:"active"`
  SortOrder           uint                      `gorm:"not null;default:0;column:sort_order" json:"sortOrder"`

  CreatedAt           time.Time                 `gorm:"not null" json:"createdAt"`
  UpdatedAt           time.Time                 `gorm:"not null" json:"updatedAt"`
}

func (CancellationReason) TableName() string {
  return "settings_cancellationreason"
}

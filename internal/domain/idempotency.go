// Package domain defines the core persistence models for the application.
package domain

import "time"

// IdempotencyKey records the outcome of a previously processed inquiry
// submission, keyed by the client-supplied Idempotency-Key header. It lets a
// retried POST return the originally assigned inquiry id instead of inserting
// a duplicate row.
type IdempotencyKey struct {
	ID        string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	Key       string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_idem_key"`
	InquiryID int64     `gorm:"not null"`
	Status    int       `gorm:"type:INTEGER NOT NULL"`
	CreatedAt time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (IdempotencyKey) TableName() string { return "idempotency_keys" }

package models

import (
	"time"

	"github.com/uptrace/bun"
)

// StoredCredential is one durable key/value row of the SQLite credential store.
type StoredCredential struct {
	bun.BaseModel `bun:"table:credentials"`

	Name      string    `bun:"name,pk"`
	Value     string    `bun:"value,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

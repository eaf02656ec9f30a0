package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
)

// KeypairModel is the GORM database model for keypairs.
// The numeric fields are stored as zero-padded decimal strings: PostgreSQL has
// no unsigned 64-bit column type and padding keeps ORDER BY numeric.
type KeypairModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	P               string    `gorm:"not null;type:varchar(20)"`
	Q               string    `gorm:"not null;type:varchar(20)"`
	N               string    `gorm:"not null;index;type:varchar(20)"`
	Phi             string    `gorm:"not null;type:varchar(20)"`
	E               string    `gorm:"not null;type:varchar(20)"`
	S               string    `gorm:"not null;type:varchar(20)"`
	Rounds          int       `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (KeypairModel) TableName() string {
	return "keypairs"
}

// ToDomain converts GORM model to domain entity
func (m *KeypairModel) ToDomain() (*keys.KeypairMeta, error) {
	var err error
	parse := func(column, value string) uint64 {
		if err != nil {
			return 0
		}
		v, perr := strconv.ParseUint(value, 10, 64)
		if perr != nil {
			err = fmt.Errorf("corrupt column %s of keypair %s: %w", column, m.ID, perr)
		}
		return v
	}

	meta := &keys.KeypairMeta{
		ID:              m.ID,
		P:               parse("p", m.P),
		Q:               parse("q", m.Q),
		N:               parse("n", m.N),
		Phi:             parse("phi", m.Phi),
		E:               parse("e", m.E),
		S:               parse("s", m.S),
		Rounds:          m.Rounds,
		DateTimeCreated: m.DateTimeCreated,
	}
	if err != nil {
		return nil, err
	}

	return meta, nil
}

// FromDomain converts domain entity to GORM model
func (m *KeypairModel) FromDomain(k *keys.KeypairMeta) {
	m.ID = k.ID
	m.P = formatColumn(k.P)
	m.Q = formatColumn(k.Q)
	m.N = formatColumn(k.N)
	m.Phi = formatColumn(k.Phi)
	m.E = formatColumn(k.E)
	m.S = formatColumn(k.S)
	m.Rounds = k.Rounds
	m.DateTimeCreated = k.DateTimeCreated
}

func formatColumn(v uint64) string {
	return fmt.Sprintf("%020d", v)
}

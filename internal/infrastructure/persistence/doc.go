// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store generated textbook RSA keypairs
// in SQLite or PostgreSQL.
package persistence

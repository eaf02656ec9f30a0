// Package models holds the GORM row types of the keypair store and their
// conversion to and from domain entities. Numeric key material is kept in
// fixed-width decimal text columns.
package models

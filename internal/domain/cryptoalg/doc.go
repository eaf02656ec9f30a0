// Package cryptoalg defines the contracts of the cryptographic processors used by
// the application and API layers.
package cryptoalg

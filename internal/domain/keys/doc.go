// Package keys defines the stored keypair entity, its query object and the
// repository and service contracts built around it.
package keys

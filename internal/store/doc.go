// Package store defines the persistence interfaces and the common error
// taxonomy used across store implementations. Concrete implementations live
// under internal/platform.
package store

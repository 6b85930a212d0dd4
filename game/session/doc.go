// Package session provides the in-memory registry of running Blokus games.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management
//   - Idle session cleanup
//
// Core Types:
//
// Manager is the registry handling all session operations. The sessions it
// stores are service.Session values, each owning its own engine.Game and
// metadata like creation time and last-active time.
//
// Session Identifiers:
//
// Sessions use 4-character hexadecimal IDs for easy reference, generated
// with cryptographic randomness. Lookups are case-insensitive. Callers may
// also supply their own ids.
//
// Concurrency:
//
// The manager is thread-safe; multiple goroutines can create, retrieve,
// and delete different sessions simultaneously. The per-session lock that
// guards game state belongs to the session itself, not the registry.
//
// Usage:
//
//	manager := session.NewManager()
//
//	// Create a new session with a generated id
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Retrieve it later
//	sess, err = manager.Get(sess.ID)
//
// Cleanup:
//
// Sessions hold no external resources, so deletion is just removal from
// the registry. CleanupIdle prunes sessions that have been inactive past a
// caller-chosen window.
package session

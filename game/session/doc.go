// Package session provides in-memory session management for slide2048.
//
// Manager stores sessions keyed by a case-insensitive ID. Each session owns
// one engine, and with it one grid and one random source; deleting or
// expiring a session drops both. Generated IDs are four hex characters
// drawn from crypto/rand.
//
// The manager is safe for concurrent use. It does not serialise commands on
// a single session's engine; the service layer does that.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", config, seed)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sess.ID)
//
//	// drop sessions idle for an hour
//	removed := manager.CleanupExpiredSessions(time.Hour)
package session

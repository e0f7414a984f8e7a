// Package state persists cart session snapshots so a session can resume
// after a restart.
//
// A snapshot records the selected quantity of every catalog entry, keyed by
// index, plus the read offset of the followed command feed.
//
// # Usage
//
// Create a file-based repository:
//
//	repo := state.NewFileRepository("/path/to/state/dir")
//
//	// Load existing snapshot
//	s, err := repo.Load(ctx)
//	if err != nil {
//	    return err
//	}
//
//	// ... apply commands ...
//
//	// Save updated snapshot
//	if err := repo.Save(ctx, s); err != nil {
//	    return err
//	}
//
// Snapshot JSON uses snake_case field names.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package state

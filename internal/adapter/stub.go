package adapter

import "context"

// Stub is an Adapter that always returns the documented benign defaults.
// It exists for tests that need an Adapter value without any real I/O.
type Stub struct{}

var _ Adapter = Stub{}

func (Stub) ReadFile(context.Context, string) (string, bool) { return "", false }
func (Stub) ListDir(context.Context, string) []string        { return []string{} }
func (Stub) Exists(context.Context, string) bool             { return false }
func (Stub) IsRepo(context.Context) bool                      { return false }
func (Stub) HasTrackingMarker(context.Context) bool           { return false }
func (Stub) DocumentCount(context.Context) int                { return 0 }

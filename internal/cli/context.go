package cli

import (
	"github.com/repkit/repkit/internal/api"
	"github.com/repkit/repkit/internal/config"
	"github.com/repkit/repkit/internal/history"
	"github.com/repkit/repkit/internal/session"
)

// Context carries the injected services every command runs against.
type Context struct {
	Config  *config.Config
	Session *session.Service
	API     *api.Client
}

// OpenHistory opens the local generation history store. Callers own Close.
func (c *Context) OpenHistory() (*history.Store, error) {
	store := history.NewStore(c.Config.HistoryPath())
	if err := store.Open(); err != nil {
		return nil, err
	}
	return store, nil
}

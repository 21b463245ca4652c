package commands

import (
	"tableflip.dev/hajz/pkg/app"
	"tableflip.dev/hajz/pkg/identity"
	"tableflip.dev/hajz/pkg/store"
)

// loadService builds the shared application service: config, store, and a
// synchronously established identity. The TUI does its own async bootstrap.
func loadService() (*app.Service, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	svc := &app.Service{Persistence: p}
	svc.SetIdentity(identity.Establish(cfg.AuthToken()))
	return svc, cfg, nil
}

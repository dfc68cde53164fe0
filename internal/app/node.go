package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildinfo/internal/adapters/cas"    //nolint:depguard // Wired in app layer
	"go.trai.ch/buildinfo/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/buildinfo/internal/adapters/format" //nolint:depguard // Wired in app layer
	"go.trai.ch/buildinfo/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/buildinfo/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/buildinfo/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			logger.NodeID,
			format.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.BuildInfoStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	encoders, err := graft.Dep[ports.EncoderProvider](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, store, hasher, log, encoders), nil
}

package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/snake/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/snake/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/snake/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/snake/internal/adapters/linear"             //nolint:depguard // Wired in app layer
	"go.trai.ch/snake/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/snake/internal/adapters/prompt"             //nolint:depguard // Wired in app layer
	"go.trai.ch/snake/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/snake/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/snake/internal/core/ports"
	"go.trai.ch/snake/internal/engine/oracle"
	"go.trai.ch/snake/internal/engine/scheduler"
	"go.trai.ch/snake/internal/engine/selector"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.CanonicalizerNodeID,
			fs.InspectorNodeID,
			fs.RemoverNodeID,
			cas.NodeID,
			oracle.NodeID,
			selector.NodeID,
			scheduler.NodeID,
			linear.NodeID,
			prompt.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	var (
		d   Deps
		err error
	)
	if d.Loader, err = graft.Dep[ports.WorkflowLoader](ctx); err != nil {
		return nil, err
	}
	if d.Canonicalizer, err = graft.Dep[ports.PathCanonicalizer](ctx); err != nil {
		return nil, err
	}
	if d.Inspector, err = graft.Dep[ports.FileInspector](ctx); err != nil {
		return nil, err
	}
	if d.Remover, err = graft.Dep[ports.OutputRemover](ctx); err != nil {
		return nil, err
	}
	if d.Cache, err = graft.Dep[ports.CommandCache](ctx); err != nil {
		return nil, err
	}
	if d.Oracle, err = graft.Dep[*oracle.Oracle](ctx); err != nil {
		return nil, err
	}
	if d.Selector, err = graft.Dep[*selector.Selector](ctx); err != nil {
		return nil, err
	}
	if d.Scheduler, err = graft.Dep[*scheduler.Scheduler](ctx); err != nil {
		return nil, err
	}
	if d.Renderer, err = graft.Dep[ports.Renderer](ctx); err != nil {
		return nil, err
	}
	if d.Prompter, err = graft.Dep[ports.Prompter](ctx); err != nil {
		return nil, err
	}
	if d.Watcher, err = graft.Dep[ports.Watcher](ctx); err != nil {
		return nil, err
	}
	if d.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	return New(d), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, telemetry), nil
}

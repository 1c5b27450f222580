// Package handlers implements the HTTP API surface of the bridge service.
package handlers

import (
	"gotokenbridge/bridge"
	"gotokenbridge/registry"
	"gotokenbridge/store"

	"go.uber.org/zap"
)

// Handler carries the dependencies shared by all endpoints.
type Handler struct {
	Store        store.Store
	Chains       *registry.Registry
	Orchestrator *bridge.Orchestrator
	Rates        bridge.RateTable
	Logger       *zap.Logger
}

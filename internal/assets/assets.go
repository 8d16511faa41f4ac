package assets

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

var manager *Manager

// Manager caches loaded models by path so repeated lookups never touch
// disk twice.
type Manager struct {
	models map[string]rl.Model
}

func Init() {
	manager = &Manager{
		models: make(map[string]rl.Model),
	}
}

// LoadModel returns the cached model for a path, loading it on first
// use. Must be called from the thread owning the GL context.
func LoadModel(path string) rl.Model {
	if manager == nil {
		Init()
	}

	if model, exists := manager.models[path]; exists {
		return model
	}

	model := rl.LoadModel(path)
	manager.models[path] = model
	return model
}

// Unload releases every cached model and empties the cache.
func Unload() {
	if manager == nil {
		return
	}

	for _, model := range manager.models {
		rl.UnloadModel(model)
	}
	manager.models = make(map[string]rl.Model)
}

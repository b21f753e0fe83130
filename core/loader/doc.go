// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which defines its name, whether it
// can run with the dependencies at hand, and its route registration.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll()
//
// The audit feature, for example, reports itself disabled when no emulator database
// is reachable, and the manager skips it.
package loader

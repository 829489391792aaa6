// Package registry provides the program registry for the desktop backend.
//
// The registry maps program keys to the window configuration used to build
// an instance: title, icon, dimensions, content reference, chrome
// descriptors (menu bar, toolbar, address bar), and placement hints. It is
// pure configuration data consumed by the window manager.
//
// Components:
//   - Manager: keyed lookup with copy-on-read semantics
//   - Seeder: loads *.json / *.yaml definitions from a programs directory
//     and installs the built-in portfolio programs
//
// Seeding is best-effort: a missing directory or malformed file is logged
// and skipped, never fatal.
//
// Example Usage:
//
//	manager := registry.NewManager()
//	seeder := registry.NewSeeder(manager, "./programs", logger)
//	seeder.SeedDefaults()
//	seeder.SeedPrograms()
//	cfg, ok := manager.Get("about")
package registry

// Package animation defines the entrance presets shared by every page section.
//
// Presets are data. The browser runtime receives them as JSON through the
// page markup or /api/animations and plays the hidden to visible transition
// once per element, when the element first crosses its viewport amount.
package animation

package config

import "slices"

// Size is the floating window size in pixels.
type Size struct {
	Width  int
	Height int
}

// Position is the floating window position in pixels.
type Position struct {
	X int
	Y int
}

// Config holds the application configuration.
type Config struct {
	// Loaded from file (private fields to enforce immutability)
	handledWorkspaces []string
	size              Size
	position          Position
	notifyCommand     string

	// Internal fields
	path string
}

// New builds a Config from already validated values. Loading from a file
// goes through LoadFromFile instead.
func New(handled []string, size Size, position Position) *Config {
	return &Config{
		handledWorkspaces: append([]string{}, handled...),
		size:              size,
		position:          position,
	}
}

// HandledWorkspaces returns a copy of the handled workspace names, in file order.
func (c *Config) HandledWorkspaces() []string {
	return append([]string{}, c.handledWorkspaces...)
}

// Handles reports whether the named workspace is managed.
func (c *Config) Handles(workspace string) bool {
	return slices.Contains(c.handledWorkspaces, workspace)
}

// Size returns the floating window size.
func (c *Config) Size() Size {
	return c.size
}

// Position returns the floating window position.
func (c *Config) Position() Position {
	return c.position
}

// GetNotifyCommand returns the notify command.
func (c *Config) GetNotifyCommand() string {
	return c.notifyCommand
}

// Path returns the file the configuration was read from.
func (c *Config) Path() string {
	return c.path
}

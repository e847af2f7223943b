//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// PluginOption is a function that configures plugin fixture creation
type PluginOption func(*pluginOptions)

type pluginOptions struct {
	vendor   string
	version  string
	tags     []string
	enabled  bool
	bundled  bool
	broken   bool
}

// WithVendor sets the plugin vendor
func WithVendor(vendor string) PluginOption {
	return func(opts *pluginOptions) {
		opts.vendor = vendor
	}
}

// WithVersion sets the plugin version
func WithVersion(version string) PluginOption {
	return func(opts *pluginOptions) {
		opts.version = version
	}
}

// WithTags sets the plugin tags
func WithTags(tags ...string) PluginOption {
	return func(opts *pluginOptions) {
		opts.tags = tags
	}
}

// Disabled marks the plugin as disabled
func Disabled() PluginOption {
	return func(opts *pluginOptions) {
		opts.enabled = false
	}
}

// Bundled marks the plugin as shipped with the host
func Bundled() PluginOption {
	return func(opts *pluginOptions) {
		opts.bundled = true
	}
}

// Broken writes an unparseable manifest
func Broken() PluginOption {
	return func(opts *pluginOptions) {
		opts.broken = true
	}
}

// CreateTestWorkspace creates a temporary directory for plugin fixtures
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateTestPlugin writes a plugin directory with a plugin.toml manifest
func (tf *TUITestFramework) CreateTestPlugin(name string, options ...PluginOption) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	opts := &pluginOptions{
		vendor:  "acme",
		version: "1.0.0",
		enabled: true,
	}
	for _, option := range options {
		option(opts)
	}

	dir := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create plugin dir: %w", err)
	}

	manifestPath := filepath.Join(dir, "plugin.toml")

	if opts.broken {
		if err := os.WriteFile(manifestPath, []byte("id = [broken"), 0644); err != nil {
			return "", err
		}
		return dir, nil
	}

	manifest := fmt.Sprintf("id = %q\nname = %q\nvendor = %q\nversion = %q\n",
		name, name, opts.vendor, opts.version)
	if len(opts.tags) > 0 {
		manifest += "tags = ["
		for i, tag := range opts.tags {
			if i > 0 {
				manifest += ", "
			}
			manifest += fmt.Sprintf("%q", tag)
		}
		manifest += "]\n"
	}
	manifest += fmt.Sprintf("\n[state]\nenabled = %v\nbundled = %v\n", opts.enabled, opts.bundled)

	if err := os.WriteFile(manifestPath, []byte(manifest), 0644); err != nil {
		return "", err
	}
	return dir, nil
}

//go:build e2e && unix

package main

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPluginScan(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	// Create test workspace with plugin manifests
	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	_, err = tf.CreateTestPlugin("markdown-preview")
	require.NoError(t, err, "Failed to create markdown-preview plugin")

	_, err = tf.CreateTestPlugin("color-picker", WithVendor("chromatics"))
	require.NoError(t, err, "Failed to create color-picker plugin")

	// Start the application
	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")

	// Wait for TUI to signal ready
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("plugdeck"), "Should show plugdeck title")

	// The scan completes and reports the count
	require.True(t, tf.SeePlain("Found 2 plugins"), "Scan should report both plugins")

	// Switch to the installed tab to see the discovered plugins
	tf.SwitchTab()
	require.True(t, tf.SeePlain("markdown-preview"), "Should list markdown-preview")
	require.True(t, tf.SeePlain("color-picker"), "Should list color-picker")
}

func TestPluginScanNestedDirectories(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	// Plugins may live one level down, e.g. vendor directories
	for i := 1; i <= 3; i++ {
		_, err = tf.CreateTestPlugin(fmt.Sprintf("acme/tool-%d", i))
		require.NoError(t, err, "Failed to create nested plugin")
	}

	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("plugdeck"), "Should show plugdeck title")
	require.True(t, tf.SeePlain("Found 3 plugins"), "Scan should find nested plugins")

	tf.SwitchTab()
	require.True(t, tf.WaitFor(func(string) bool {
		s := tf.SnapshotPlain()
		return strings.Contains(s, "tool-1") && strings.Contains(s, "tool-2") && strings.Contains(s, "tool-3")
	}, 3*time.Second), "Should list all nested plugins")
}

func TestBrokenManifestShowsInvalidPlugin(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	_, err = tf.CreateTestPlugin("good-plugin")
	require.NoError(t, err, "Failed to create good plugin")
	_, err = tf.CreateTestPlugin("bad-plugin", Broken())
	require.NoError(t, err, "Failed to create broken plugin")

	err = tf.StartApp("-d", workspace)
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.SwitchTab()
	require.True(t, tf.SeePlain("good-plugin"), "Should list the valid plugin")
	require.True(t, tf.SeePlain("bad-plugin"), "Broken plugin should still appear")
	require.True(t, tf.SeePlain("invalid"), "Broken plugin should be marked invalid")
}

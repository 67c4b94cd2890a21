//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQuitFromTable(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartChemVista(), "Failed to start app")
	require.True(t, tf.Ready(), "Should show the ChemVista title")

	// The search box has focus at start, so q would be typed
	tf.Esc()
	tf.Quit()

	if !tf.WaitExit(1500 * time.Millisecond) {
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		t.Fatal("app did not exit after quit")
	}
}

func TestCtrlCFromSearchBox(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartChemVista(), "Failed to start app")
	require.True(t, tf.Ready(), "Should show the ChemVista title")

	tf.Type("wat")
	tf.SendCtrlC()

	require.True(t, tf.WaitExit(1500*time.Millisecond), "app did not exit on ctrl+c")
}

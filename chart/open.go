// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// viewer returns the command that opens path with the desktop's
// default application on goos.
func viewer(goos, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{"-W", path}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	default:
		return "xdg-open", []string{path}
	}
}

// Open shows the chart file at path in the system viewer and waits for
// the launcher to exit. On macOS that is when the viewer closes; the
// xdg-open and Windows launchers return once the viewer has started.
func Open(ctx context.Context, path string) error {
	name, args := viewer(runtime.GOOS, path)
	cmd := exec.CommandContext(ctx, name, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("chart: opening %s with %s: %w\n%s", path, name, err, out)
	}
	return nil
}

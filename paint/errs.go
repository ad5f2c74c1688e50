// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"log/slog"
)

// assertf panics with a formatted message when cond is false. It is used
// exclusively for programmer-misuse conditions (double-released savers,
// an invalid FrameConfig or nested BeginFrame, state or transform changes
// outside an active frame, a nine-patch draw on a bitmap without metadata)
// so that such bugs stay loud and distinguishable from the engine's own
// recoverable bool/empty-result returns. Draw calls outside an active frame
// are not asserted (engineActive logs and drops them), and coordinates are
// not checked for finiteness.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}

// warnf logs a recoverable-but-worth-noting engine-contract violation,
// such as a back-end call observed outside begin/end.
func warnf(format string, args ...any) {
	slog.Warn(fmt.Sprintf(format, args...))
}

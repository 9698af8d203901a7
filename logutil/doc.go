// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil bridges the standard library's structured logging to
// the clout console.
//
// Programs often pull in libraries that log through log/slog. Those
// records normally belong in a log file, not on the user's terminal,
// but during development (or at -vv and beyond) it is convenient to see
// them inline with clout's own output. This package provides a
// slog.Handler that converts each record into a clout message at the
// matching level, leaving threshold filtering to clout itself.
//
// # Usage
//
//	err := clout.Init().WithVerbosity(verbose).Done()
//	if err != nil {
//		return err
//	}
//	logutil.Setup()
//
//	// a library call somewhere...
//	slog.Debug("cache miss", "key", key)
//	// ...shows up cyan at -vv, and is filtered below that
//
// Level mapping: slog Error, Warn, Info and Debug map to their clout
// namesakes; anything below slog.LevelDebug maps to Trace. Records that
// arrive while clout is not installed are silently dropped.
package logutil

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package globj

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// DebugMessage is one driver diagnostic event.
type DebugMessage struct {
	Source   Enum
	Type     Enum
	Severity Enum
	ID       uint32
	// Message is the text sliced to the driver-reported length.
	Message string
}

// String formats the message as `[<source>] <type> (<severity>): <message>`.
func (m DebugMessage) String() string {
	return fmt.Sprintf("[%s] %s (%s): %s",
		SourceString(m.Source), TypeString(m.Type), SeverityString(m.Severity), m.Message)
}

// SourceString maps a debug source enumerant to its fixed name.
func SourceString(source Enum) string {
	switch source {
	case DebugSourceAPI:
		return "API"
	case DebugSourceWindowSystem:
		return "Window System"
	case DebugSourceShaderCompiler:
		return "Shader Compiler"
	case DebugSourceThirdParty:
		return "Third Party"
	case DebugSourceApplication:
		return "Application"
	case DebugSourceOther:
		return "Other"
	default:
		return "UNKNOWN"
	}
}

// TypeString maps a debug type enumerant to its fixed name.
func TypeString(gltype Enum) string {
	switch gltype {
	case DebugTypeError:
		return "Error"
	case DebugTypeDeprecatedBehavior:
		return "Deprecated"
	case DebugTypeUndefinedBehavior:
		return "Undefined"
	case DebugTypePortability:
		return "Portability"
	case DebugTypePerformance:
		return "Performance"
	case DebugTypeOther:
		return "Other"
	case DebugTypeMarker:
		return "Marker"
	default:
		return "UNKNOWN"
	}
}

// SeverityString maps a debug severity enumerant to its fixed name.
func SeverityString(severity Enum) string {
	switch severity {
	case DebugSeverityHigh:
		return "High"
	case DebugSeverityMedium:
		return "Medium"
	case DebugSeverityLow:
		return "Low"
	case DebugSeverityNotification:
		return "Notification"
	default:
		return "UNKNOWN"
	}
}

// IsFatal is the default fatal predicate: error-typed or high-severity
// messages are unrecoverable.
func IsFatal(m DebugMessage) bool {
	return m.Type == DebugTypeError || m.Severity == DebugSeverityHigh
}

// DebugConfig configures the debug message router. The zero value (or a
// nil pointer) selects the development policy: log to stderr, terminate
// the process on fatal messages.
type DebugConfig struct {
	// Output receives one formatted line per message.
	// If nil, defaults to os.Stderr.
	Output io.Writer

	// Fatal decides which messages are unrecoverable.
	// If nil, defaults to IsFatal.
	Fatal func(DebugMessage) bool

	// OnFatal runs immediately and unconditionally after a fatal message
	// is written. It must not return control to the driver: the default,
	// func() { os.Exit(1) }, terminates the process bypassing all cleanup.
	OnFatal func()
}

var (
	debugMu        sync.Mutex
	debugInstalled bool
)

// InstallDebug enables driver debug output on api and installs the
// process-wide message callback, exactly once. A second call returns
// ErrDebugInstalled.
//
// Every message is written to cfg.Output as
// `[<source>] <type> (<severity>): <message>`. If cfg.Fatal reports the
// message as unrecoverable, cfg.OnFatal runs immediately after the write.
func InstallDebug(api API, cfg *DebugConfig) error {
	debugMu.Lock()
	defer debugMu.Unlock()
	if debugInstalled {
		return ErrDebugInstalled
	}
	debugInstalled = true

	out := io.Writer(os.Stderr)
	fatal := IsFatal
	onFatal := func() { os.Exit(1) }
	if cfg != nil {
		if cfg.Output != nil {
			out = cfg.Output
		}
		if cfg.Fatal != nil {
			fatal = cfg.Fatal
		}
		if cfg.OnFatal != nil {
			onFatal = cfg.OnFatal
		}
	}

	api.Enable(DebugOutput)
	api.Enable(DebugOutputSynchronous)
	api.DebugMessageCallback(func(source, gltype Enum, id uint32, severity Enum, message string) {
		m := DebugMessage{Source: source, Type: gltype, Severity: severity, ID: id, Message: message}
		fmt.Fprintln(out, m)
		if fatal(m) {
			onFatal()
		}
	})
	return nil
}

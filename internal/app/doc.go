// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires configuration, settings store, services and report
// rendering into the operations exposed by the hostkeys command line.
//
// The dump never fails once configuration is valid: an unreadable store is
// reported as "no hosts", wrong-length keys are warnings, and history or
// clipboard problems are only logged.
package app

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build gldebug

package globj

const debugGroupsEnabled = true

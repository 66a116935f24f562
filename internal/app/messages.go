// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

const (
	// MsgCopiedKeys confirms a clipboard copy on stderr.
	MsgCopiedKeys = "copied rp_regist_key and rp_key of host %d to the clipboard"

	// MsgNoHistory is printed when the history database holds no runs.
	MsgNoHistory = "No dumps recorded yet"

	// MsgKeyNotUsable follows a decode result whose length is wrong.
	MsgKeyNotUsable = "WARNING: decoded value is not %d bytes; %s expects %d bytes."
)

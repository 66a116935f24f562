// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report renders a host listing for the terminal or for machines.
//
// The text format is line oriented and stable:
//
//	Host[0] nickname='Living Room' mac='aabbccddeeff'
//	  rp_regist_key = 00112233445566778899aabbccddeeff
//	  rp_key (decoded len=10) = 0102030405060708090a
//	  WARNING: rp_key is not 16 bytes; chiaki_session_init expects 16 bytes.
//
// followed by a blank line per host. JSON and YAML carry the same data plus
// the provenance of each secret.
package report

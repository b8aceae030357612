// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client application.
//
// It wires subcommand parsing, the client note service and the local sent
// ledger into a single process lifecycle. All note cryptography happens in
// the service layer before anything reaches the network.
package client

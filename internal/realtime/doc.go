// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package realtime keeps the set of connected websocket clients and fans
// note change events out to them.
//
// Delivery is best effort: every client owns a bounded send buffer and a
// message that does not fit is dropped for that client only. There is no
// acknowledgement and no replay.
package realtime

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

// ErrRelayRetriesExhausted is returned by ChangeRelay.Run when the change
// feed could not be resubscribed within the configured number of retries.
var ErrRelayRetriesExhausted = errors.New("change relay gave up resubscribing")

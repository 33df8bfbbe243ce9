// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/sethvargo/go-retry"
)

// closeTimeout bounds the release of a failed subscription.
const closeTimeout = 5 * time.Second

// ChangeRelay reads the note store's change feed and forwards every event
// to a Broadcaster.
//
// A failed subscription is closed and re-opened with exponential backoff.
// The backoff starts over once a new subscription delivers an event. When
// the retry budget is spent the relay stops; the rest of the process is
// unaffected.
type ChangeRelay struct {
	feed        store.ChangeFeed
	broadcaster Broadcaster

	baseDelay  time.Duration
	maxDelay   time.Duration
	maxRetries uint64

	// onStatus is told whether a live subscription is held.
	onStatus func(live bool)

	logger *logger.Logger
}

// RelayOption customises a ChangeRelay.
type RelayOption func(*ChangeRelay)

// WithStatusListener registers fn to be called whenever the relay gains or
// loses its subscription.
func WithStatusListener(fn func(live bool)) RelayOption {
	return func(r *ChangeRelay) {
		r.onStatus = fn
	}
}

func NewChangeRelay(feed store.ChangeFeed, broadcaster Broadcaster, cfg config.Relay, logger *logger.Logger, opts ...RelayOption) *ChangeRelay {
	r := &ChangeRelay{
		feed:        feed,
		broadcaster: broadcaster,
		baseDelay:   cfg.RetryBaseDelay,
		maxDelay:    cfg.RetryMaxDelay,
		maxRetries:  cfg.MaxRetries,
		onStatus:    func(bool) {},
		logger:      logger,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run relays change events until ctx is cancelled or resubscription fails
// more often than allowed.
func (r *ChangeRelay) Run(ctx context.Context) error {
	log := r.logger.GetChildLogger()
	log.Info().Msg("change relay started")

	backoff := r.newBackoff()
	for {
		relayed, err := r.relay(ctx)
		if ctx.Err() != nil {
			log.Info().Msg("change relay stopped")
			return nil
		}
		if relayed > 0 {
			backoff = r.newBackoff()
		}

		delay, stop := backoff.Next()
		if stop {
			log.Error().Err(err).Msg("change relay gave up resubscribing")
			return fmt.Errorf("%w: %w", ErrRelayRetriesExhausted, err)
		}

		log.Warn().Err(err).Dur("retry_in", delay).Msg("change feed failed, resubscribing")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Info().Msg("change relay stopped")
			return nil
		case <-timer.C:
		}
	}
}

// relay holds one subscription until it fails. It returns the number of
// events forwarded and the error that ended the subscription.
func (r *ChangeRelay) relay(ctx context.Context) (int, error) {
	sub, err := r.feed.Subscribe(ctx)
	if err != nil {
		return 0, fmt.Errorf("subscribing to change feed: %w", err)
	}

	r.onStatus(true)
	r.logger.Info().Msg("subscribed to change feed")

	defer func() {
		r.onStatus(false)

		closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), closeTimeout)
		defer cancel()
		if closeErr := sub.Close(closeCtx); closeErr != nil {
			r.logger.Warn().Err(closeErr).Msg("closing change feed subscription failed")
		}
	}()

	relayed := 0
	for {
		event, err := sub.Next(ctx)
		if err != nil {
			return relayed, fmt.Errorf("reading change feed: %w", err)
		}

		delivered := r.broadcaster.Broadcast(event)
		relayed++

		r.logger.Debug().
			Str("operation", event.Operation).
			Str("owner_id", event.OwnerID).
			Int("clients", delivered).
			Msg("change relayed")
	}
}

func (r *ChangeRelay) newBackoff() retry.Backoff {
	backoff := retry.NewExponential(r.baseDelay)
	backoff = retry.WithCappedDuration(r.maxDelay, backoff)
	if r.maxRetries > 0 {
		backoff = retry.WithMaxRetries(r.maxRetries, backoff)
	}
	return backoff
}

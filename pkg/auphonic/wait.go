package auphonic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akordowski/auphonic-go/pkg/precondition"
	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

// WaitOptions control how WaitForProduction polls.
type WaitOptions struct {
	// Interval is the first delay between polls. Defaults to 5s.
	Interval time.Duration
	// MaxInterval caps the delay between polls. Defaults to 1m.
	MaxInterval time.Duration
	// Timeout bounds the total wait. Zero means only ctx bounds it.
	Timeout time.Duration
}

var errStillProcessing = errors.New("production is still processing")

// WaitForProduction polls a production until it is done or has failed.
// Failed API calls stop the wait immediately. A production that ends in the
// Error state is returned together with a *ProductionFailedError.
func (c *Client) WaitForProduction(ctx context.Context, productionUUID string, opts WaitOptions) (*Production, error) {
	if err := c.beginProductionCall(productionUUID); err != nil {
		return nil, err
	}
	if err := precondition.First(
		precondition.GreaterOrEqual(int64(opts.Interval), 0, "interval"),
		precondition.GreaterOrEqual(int64(opts.MaxInterval), 0, "maxInterval"),
		precondition.GreaterOrEqual(int64(opts.Timeout), 0, "timeout"),
	); err != nil {
		return nil, err
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 5 * time.Second
	expBackoff.MaxInterval = time.Minute
	if opts.Interval > 0 {
		expBackoff.InitialInterval = opts.Interval
	}
	if opts.MaxInterval > 0 {
		expBackoff.MaxInterval = opts.MaxInterval
	}
	if expBackoff.MaxInterval < expBackoff.InitialInterval {
		expBackoff.MaxInterval = expBackoff.InitialInterval
	}
	expBackoff.Reset()

	var last *Production
	operation := func() (*Production, error) {
		production, err := c.GetProduction(ctx, productionUUID)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		last = production
		if production == nil {
			return nil, backoff.Permanent(fmt.Errorf("production %s returned no data", productionUUID))
		}
		if !production.Status.Terminal() {
			return nil, errStillProcessing
		}
		return production, nil
	}

	notify := func(err error, next time.Duration) {
		status := ""
		if last != nil {
			status = last.Status.String()
		}
		c.logger.Debug("Production not finished yet",
			zap.String("production_uuid", productionUUID),
			zap.String("status", status),
			zap.Duration("next_poll", next))
	}

	production, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxElapsedTime(opts.Timeout),
		backoff.WithNotify(notify),
	)
	if err != nil {
		if errors.Is(err, errStillProcessing) {
			return last, fmt.Errorf("production %s not finished after %s: %w", productionUUID, opts.Timeout, context.DeadlineExceeded)
		}
		return last, err
	}

	if production.Status == StatusError {
		c.logger.Warn("Production failed",
			zap.String("production_uuid", productionUUID),
			zap.String("error_status", production.ErrorStatus))
		return production, &ProductionFailedError{
			UUID:        productionUUID,
			Message:     production.ErrorMessage,
			ErrorStatus: production.ErrorStatus,
		}
	}

	c.logger.Info("Production finished", zap.String("production_uuid", productionUUID))
	return production, nil
}

package utils

import (
	"time"

	"github.com/charlieabtbl/cosmicroses"
)

// Logging is a decorator to log calls as they pass through
type Logging struct{}

var _ cosmicroses.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (r Logging) Check(ctx cosmicroses.Context, store cosmicroses.KVStore, tx cosmicroses.Tx, next cosmicroses.Checker) (*cosmicroses.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, tx, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx cosmicroses.Context, store cosmicroses.KVStore, tx cosmicroses.Tx, next cosmicroses.Deliverer) (*cosmicroses.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, tx, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx cosmicroses.Context, start time.Time, tx cosmicroses.Tx, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := cosmicroses.GetLogger(ctx).With("duration", delta/time.Microsecond)
	if path := msgPath(tx); path != "" {
		logger = logger.With("path", path)
	}

	// Although message can be empty, we still want to emit a log entry
	// because it contains other relevant information beside the message.
	switch {
	case err != nil:
		logger.Error(msg, "err", err)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}

func msgPath(tx cosmicroses.Tx) string {
	if tx == nil {
		return ""
	}
	msg, err := tx.GetMsg()
	if err != nil || msg == nil {
		return ""
	}
	return msg.Path()
}

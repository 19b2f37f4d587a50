package reportstore

import "errors"

var (
	ErrNotFound      = errors.New("reportstore: report not found")
	ErrInvalidID     = errors.New("reportstore: invalid report id")
	ErrNilReport     = errors.New("reportstore: nothing to save")
	ErrEncodeReport  = errors.New("reportstore: failed to encode report")
	ErrDecodeReport  = errors.New("reportstore: failed to decode report")
	ErrUnknownDriver = errors.New("reportstore: unknown driver")

	ErrFailedToParseRedisConnString = errors.New("reportstore: failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("reportstore: redis did not become ready within the given time period")
	ErrHealthcheckFailed            = errors.New("reportstore: redis healthcheck failed")
)

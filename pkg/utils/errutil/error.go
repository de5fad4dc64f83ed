package errutil

import (
	"context"
	"fmt"

	"github.com/C-S-I-FIIT/egis/pkg/utils/logging"
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
)

// tagKeys are goerr values promoted to searchable Sentry tags
var tagKeys = map[string]struct{}{
	"org_id":    {},
	"job_id":    {},
	"remote_id": {},
	"scan_name": {},
}

// HandleError sends the error to Sentry and logs it. It is used where no caller can receive the error.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				key := fmt.Sprintf("%v", k)
				if _, ok := tagKeys[key]; ok {
					scope.SetTag(key, fmt.Sprintf("%v", v))
					continue
				}
				scope.SetExtra(key, v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}

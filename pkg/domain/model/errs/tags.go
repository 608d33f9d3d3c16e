package errs

import "github.com/m-mizutani/goerr/v2"

var (
	// Client errors (4xx)
	TagUnauthenticated = goerr.NewTag("unauthenticated") // 401
	TagForbidden       = goerr.NewTag("forbidden")       // 403
	TagNotFound        = goerr.NewTag("not_found")       // 404
	TagInvalidRequest  = goerr.NewTag("invalid_request") // 400
	TagValidation      = goerr.NewTag("validation")      // 400

	// Server errors (5xx)
	TagService  = goerr.NewTag("service_error") // 500, downstream dependency failure
	TagDatabase = goerr.NewTag("database")      // 500
	TagInternal = goerr.NewTag("internal")      // 500

	// Side-effect errors that must not be retried
	TagPermanent = goerr.NewTag("permanent")
)

package http

var (
	PanicRecoveryMiddleware = panicRecoveryMiddleware
	LoggingMiddleware       = loggingMiddleware
	HandleError             = handleError
	NewSessionCookie        = newSessionCookie
	SetCookie               = setCookie
)

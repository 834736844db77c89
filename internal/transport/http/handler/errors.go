package handler

const (
	errInternalServer = "Internal server error"
	errAccessDenied   = "Access Denied"
	errNoCourseFound  = "No Course found"
	errNoUserFound    = "No User found"
	errEmailTaken     = "The email you have entered already exist, please enter a new one"
)

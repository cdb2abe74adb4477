package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler        authHandler
	projectHandler     projectHandler
	blogPostHandler    blogPostHandler
	testimonialHandler testimonialHandler
	contactHandler     contactHandler
	resumeHandler      resumeHandler
	uploadHandler      uploadHandler
	feedHandler        feedHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error  string `json:"error" example:"Internal Server Error"`
	Status string `json:"status" example:"error"`
	Field  string `json:"field,omitempty" example:"title"`
}

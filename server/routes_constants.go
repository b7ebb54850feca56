package server

// Route path constants
const (
	RouteIndex = "/{$}"

	// Auth Routes
	RouteAuthLogin    = "/auth/login"
	RouteAuthLogout   = "/auth/logout"
	RouteAuthRegister = "/auth/register"

	// User Routes
	RouteUsers = "/users/{$}"
	RouteUser  = "/users/{id}"

	// Post Routes
	RoutePosts = "/posts/{$}"
	RoutePost  = "/posts/{id}"
)

package server

import (
	"net/http"
)

func (s *Server) initRoutes() {
	// OPTIONS is answered for every path before routing
	s.preflight = ChainMiddleware(preflightHandler, s.APIMiddleware()...)

	s.RegisterRouteHandler("GET "+RouteIndex, ChainMiddleware(s.IndexHandler(), s.APIMiddleware()...))

	// SESSION
	s.RegisterRouteHandler("POST "+RouteAuthLogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))

	// USERS
	s.RegisterRouteHandler("POST "+RouteAuthRegister, ChainMiddleware(s.RegisterHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteUsers, ChainMiddleware(s.RegisterHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteUser, ChainMiddleware(s.WithAuth(s.DeactivateUserHandler()), s.APIMiddleware()...))

	// POSTS
	s.RegisterRouteHandler("POST "+RoutePosts, ChainMiddleware(s.WithAuth(s.CreatePostHandler()), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RoutePosts, ChainMiddleware(s.WithAuth(s.ListPostsHandler()), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RoutePost, ChainMiddleware(s.WithAuth(s.GetPostHandler()), s.APIMiddleware()...))
	s.RegisterRouteHandler("PUT "+RoutePost, ChainMiddleware(s.WithAuth(s.EditPostHandler()), s.APIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RoutePost, ChainMiddleware(s.WithAuth(s.DeletePostHandler()), s.APIMiddleware()...))
}

// preflightHandler answers OPTIONS requests; CorsMiddleware has already set the headers.
func preflightHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

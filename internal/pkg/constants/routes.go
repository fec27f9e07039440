package constants

// App routes returned to the mobile client as navigation hints
const (
	RouteLogin = "/auth/login"
	RouteHome  = "/principal/home"
)

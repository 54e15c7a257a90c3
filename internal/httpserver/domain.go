package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "hr-agent-system/internal/auth/delivery/http"
	chatHTTP "hr-agent-system/internal/chat/delivery/http"
	employeeHTTP "hr-agent-system/internal/employee/delivery/http"
	"hr-agent-system/internal/middleware"
)

// Each domain follows the same steps:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
// Use cases are built by the composition root because the agent layer shares them.

func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := authHTTP.New(srv.l, srv.authUC)
	authHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}

func (srv HTTPServer) setupEmployeeDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := employeeHTTP.New(srv.l, srv.employeeUC)
	employeeHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Employee domain registered")
	return nil
}

func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}

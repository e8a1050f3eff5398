package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"directchat/configs"
	"directchat/internal/handlers"

	"github.com/gin-gonic/gin"
)

var (
	httpServer *HttpServer
	once       sync.Once
)

type HttpServer struct {
	ctx     context.Context
	config  *configs.Config
	router  *gin.Engine
	handler *handlers.RestHandler
}

func NewHttpServer(ctx context.Context, config *configs.Config, handler *handlers.RestHandler) *HttpServer {
	once.Do(func() {
		httpServer = &HttpServer{
			ctx:     ctx,
			config:  config,
			handler: handler,
		}
	})
	return httpServer
}

func (hs *HttpServer) Run() {
	hs.initializeGin()
	hs.setupRestfulRoutes()

	server := hs.startServer()

	// Wait for interrupt signal to gracefully shut down the server
	hs.waitForShutdown(server)
}

func (hs *HttpServer) initializeGin() {
	hs.router = gin.Default()
}

func (hs *HttpServer) setupRestfulRoutes() {
	hs.router.POST("/register", hs.handler.Register)
	hs.router.POST("/login", hs.handler.Login)

	users := hs.router.Group("/users")
	{
		users.GET("", hs.handler.GetUsers)
		users.GET("/:id", hs.handler.GetSingleUser)
		users.POST("/profile-photo", hs.handler.UploadUserProfilePhoto)
	}

	messages := hs.router.Group("/messages")
	{
		messages.POST("", hs.handler.SendMessage)
		messages.GET("/conversation/:userId", hs.handler.GetConversation)
		messages.GET("/conversations", hs.handler.GetConversations)
		messages.PATCH("/:id/read", hs.handler.MarkMessageRead)
	}
}

func (hs *HttpServer) startServer() *http.Server {
	addr := hs.config.Viper.GetString("server.addr")
	server := &http.Server{
		Addr:    addr,
		Handler: hs.router,
	}

	go func() {
		log.Println("HTTP server started on", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	return server
}

func (hs *HttpServer) waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if err := server.Shutdown(hs.ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

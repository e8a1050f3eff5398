package app

import (
	"context"
	"log"
	"sync"
	"time"

	"directchat/configs"
	"directchat/internal/cache"
	"directchat/internal/handlers"
	"directchat/internal/repositories"
	"directchat/internal/servers/database"
	"directchat/internal/servers/http"
	"directchat/internal/services"

	"github.com/redis/go-redis/v9"
)

var (
	app  *App
	once sync.Once
)

type App struct {
	redis   *redis.Client
	ctx     context.Context
	configs *configs.Config
}

func GetApp() *App {
	once.Do(func() {
		app = &App{}
	})
	return app
}

func (app *App) LetsGo() {
	app.ctx = context.Background()
	app.initializeConfigs()
	app.initializeRedis()

	db := database.GetDB(app.configs)
	userRepo := repositories.NewUserRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	userCache := cache.NewUserCache(
		app.redis,
		app.ctx,
		time.Duration(app.configs.Viper.GetInt("redis.user_cache_ttl"))*time.Second,
	)

	tokenService := services.NewTokenService(
		userRepo,
		userCache,
		app.jwtSecret(),
		time.Duration(app.configs.Viper.GetInt("jwt.expiration_time"))*time.Second,
	)
	accountService := services.NewAccountService(userRepo, tokenService)
	messagingService := services.NewMessagingService(tokenService, messageRepo, userRepo)

	minioService := services.NewMinioService(app.configs)
	fileManagerService := services.NewFileManagerService(minioService)

	restHandler := handlers.NewRestHandler(
		accountService,
		messagingService,
		fileManagerService,
	)

	http.NewHttpServer(app.ctx, app.configs, restHandler).Run()
}

func (app *App) initializeRedis() {
	app.redis = redis.NewClient(&redis.Options{
		Addr: app.configs.Viper.GetString("redis.addr"),
	})
}

func (app *App) initializeConfigs() {
	app.configs = configs.GetConfig()
}

func (app *App) jwtSecret() []byte {
	secret := app.configs.Viper.GetString("jwt.secret")
	if secret == "" {
		log.Fatalln("jwt.secret is not configured")
	}
	return []byte(secret)
}

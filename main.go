package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-pcg/api"
	api_i "github.com/beka-birhanu/vinom-pcg/api/i"
	"github.com/beka-birhanu/vinom-pcg/api/identity"
	levelapi "github.com/beka-birhanu/vinom-pcg/api/level"
	presetapi "github.com/beka-birhanu/vinom-pcg/api/preset"
	"github.com/beka-birhanu/vinom-pcg/config"
	"github.com/beka-birhanu/vinom-pcg/infrastruture/cache"
	"github.com/beka-birhanu/vinom-pcg/infrastruture/repo"
	"github.com/beka-birhanu/vinom-pcg/infrastruture/token"
	"github.com/beka-birhanu/vinom-pcg/logger"
	"github.com/beka-birhanu/vinom-pcg/presets"
	"github.com/beka-birhanu/vinom-pcg/service"
	"github.com/beka-birhanu/vinom-pcg/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient      *mongo.Client
	redisClient      *redis.Client
	levelRepo        i.LevelRepo
	levelCache       i.LevelCache
	presetLoader     *presets.Loader
	levelService     i.LevelService
	levelController  api_i.Controller
	presetController api_i.Controller
	jwtTokenizer     i.Tokenizer
	router           *api.Router
	appLogger        i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initLevelRepo(client *mongo.Client) {
	levelRepo = repo.NewLevelRepo(client, config.Envs.DBName, "levels")
	appLogger.Info("Level repository initialized")
}

// initRedis connects the level cache. Generation keeps working without it.
func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Warning(fmt.Sprintf("Redis ping failed, levels will not be cached: %v", err))
		return
	}

	var err error
	levelCache, err = cache.NewRedisLevelCache(redisClient, config.Envs.CacheTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level cache: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initPresets() {
	presetLoader = presets.NewLoader(config.Envs.PresetsPath)
	if err := presetLoader.Load(); err != nil {
		appLogger.Error(fmt.Sprintf("Loading presets: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Loaded %d presets from %s", len(presetLoader.Names()), config.Envs.PresetsPath))
}

func initLevelService() {
	serviceLogger, err := logger.New("LEVEL-SERVICE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level service logger: %v", err))
		os.Exit(1)
	}

	levelService, err = service.NewLevelService(levelRepo, levelCache, serviceLogger, &service.Options{
		Workers: config.Envs.PregenWorkers,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Level service initialized")
}

func initControllers() {
	apiLogger, err := logger.New("API", config.ColorPurple, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating api logger: %v", err))
		os.Exit(1)
	}

	levelController, err = levelapi.NewLevelController(levelService, apiLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level controller: %v", err))
		os.Exit(1)
	}

	presetController, err = presetapi.NewPresetController(presetLoader, levelService, apiLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating preset controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{levelController, presetController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating app logger: %v\n", err)
		os.Exit(1)
	}
	config.Load()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initRedis(ctx)
	defer redisClient.Close()

	initLevelRepo(mongoClient)
	initPresets()
	initLevelService()
	initControllers()
	initJWTTokenizer()
	initRouter(jwtTokenizer)

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}

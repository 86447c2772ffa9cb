// container.go
package main

import (
	"context"
	"fmt"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/orgstruct/bff/pkg/ai/llm"
	"github.com/orgstruct/bff/pkg/ai/providers/aiopenai"
	"github.com/orgstruct/bff/pkg/ai/providers/pythonapi"
	"github.com/orgstruct/bff/pkg/ai/speech"
	"github.com/orgstruct/bff/pkg/assistant"
	"github.com/orgstruct/bff/pkg/assistant/assistantapi"
	"github.com/orgstruct/bff/pkg/assistant/assistantinfra"
	"github.com/orgstruct/bff/pkg/assistant/assistantsrv"
	"github.com/orgstruct/bff/pkg/config"
	"github.com/orgstruct/bff/pkg/fsx"
	"github.com/orgstruct/bff/pkg/fsx/fsxlocal"
	"github.com/orgstruct/bff/pkg/fsx/fsxs3"
	"github.com/orgstruct/bff/pkg/logx"
	"github.com/orgstruct/bff/pkg/orgchart/orgchartapi"
	"github.com/orgstruct/bff/pkg/orgchart/orgchartinfra"
	"github.com/orgstruct/bff/pkg/orgchart/orgchartsrv"
	"github.com/orgstruct/bff/pkg/telegram/telegramapi"
	"github.com/orgstruct/bff/pkg/telegram/telegraminfra"
	"github.com/orgstruct/bff/pkg/telegram/telegramsrv"
)

// Container holds all application dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Domain Services
	ChartService *orgchartsrv.ChartService
	VoiceService *assistantsrv.VoiceService
	BotService   *telegramsrv.BotService

	// API Handlers
	ChartHandlers *orgchartapi.ChartHandlers
	VoiceHandlers *assistantapi.VoiceHandlers
	BotHandlers   *telegramapi.BotHandlers
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) *Container {
	logx.Info("Initializing dependency container...")

	c := &Container{
		Config: cfg,
	}

	c.initInfrastructure()
	c.initServices()

	logx.Info("Container initialized")
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Config.Database.Host,
		c.Config.Database.Port,
		c.Config.Database.User,
		c.Config.Database.Password,
		c.Config.Database.Name,
		c.Config.Database.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
	db.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
	db.SetConnMaxLifetime(c.Config.Database.ConnMaxLifetime)
	c.DB = db
	logx.Info("Database connected")

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Address(),
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		if c.Config.Assistant.MemoryBackend == "redis" {
			logx.Fatalf("Failed to connect to Redis: %v (required by the redis memory backend)", err)
		}
		logx.Warnf("Redis unavailable: %v", err)
	} else {
		logx.Info("Redis connected")
	}

	// 3. Audio archive storage (local or S3)
	c.initFileStorage()
}

func (c *Container) initFileStorage() {
	switch c.Config.Storage.Mode {
	case "s3":
		awsCfg, err := awsConfig.LoadDefaultConfig(context.TODO(),
			awsConfig.WithRegion(c.Config.Storage.AWSRegion))
		if err != nil {
			logx.Fatalf("Unable to load AWS SDK config: %v", err)
		}
		c.S3Client = s3.NewFromConfig(awsCfg)
		c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, c.Config.Storage.AWSBucket, "")
		logx.Infof("S3 file system configured (bucket: %s, region: %s)",
			c.Config.Storage.AWSBucket, c.Config.Storage.AWSRegion)

	case "local":
		localFS, err := fsxlocal.NewLocalFileSystem(c.Config.Storage.LocalDir)
		if err != nil {
			logx.Fatalf("Failed to initialize local file system: %v", err)
		}
		c.FileSystem = localFS
		logx.Infof("Local file system configured (path: %s)", localFS.GetBasePath())

	default:
		logx.Fatalf("Unknown STORAGE_MODE: %s (use 'local' or 's3')", c.Config.Storage.Mode)
	}
}

func (c *Container) initServices() {
	// --- Org Chart ---
	employeeRepo := orgchartinfra.NewPostgresEmployeeRepository(c.DB)
	projectRepo := orgchartinfra.NewPostgresProjectRepository(c.DB)
	globalConfigRepo := orgchartinfra.NewPostgresGlobalConfigRepository(c.DB)

	c.ChartService = orgchartsrv.NewChartService(employeeRepo, projectRepo, globalConfigRepo)

	// --- Telegram ---
	botAPI := telegraminfra.NewHTTPBotAPI(
		c.Config.Telegram.APIBaseURL,
		c.Config.Telegram.BotToken,
	)
	c.BotService = telegramsrv.NewBotService(botAPI, &c.Config.Telegram)

	// --- Voice Assistant ---
	llmClient, sttClient, ttsClient := c.initInferenceClients()

	var memoryRepo assistant.MemoryRepository
	if c.Config.Assistant.MemoryBackend == "redis" {
		memoryRepo = assistantinfra.NewRedisMemoryRepository(c.Redis, int64(c.Config.Assistant.MemoryLimit))
		logx.Info("Using Redis memory backend")
	} else {
		memoryRepo = assistantinfra.NewPostgresMemoryRepository(c.DB)
		logx.Info("Using Postgres memory backend")
	}
	instructionRepo := assistantinfra.NewPostgresInstructionRepository(c.DB)
	ruleRepo := assistantinfra.NewPostgresRuleRepository(c.DB)

	notifier := assistantinfra.NewHTTPNotifier(
		c.Config.Assistant.NotifyURL,
		c.Config.Assistant.NotifyAuthKey,
		c.Config.Assistant.NotifyChatID,
	)

	c.VoiceService = assistantsrv.NewVoiceService(
		sttClient,
		ttsClient,
		llmClient,
		memoryRepo,
		instructionRepo,
		ruleRepo,
		notifier,
		&c.Config.Assistant,
	)
	if c.Config.Storage.ArchiveAudio {
		c.VoiceService = c.VoiceService.WithArchive(c.FileSystem)
		logx.Info("Audio archiving enabled")
	}

	// --- API Handlers ---
	c.ChartHandlers = orgchartapi.NewChartHandlers(c.ChartService)
	c.VoiceHandlers = assistantapi.NewVoiceHandlers(c.VoiceService)
	c.BotHandlers = telegramapi.NewBotHandlers(c.BotService, &c.Config.Assistant)
}

// initInferenceClients selects the inference backend. The Python service
// is the default; OpenAI is a drop-in alternative for all three stages.
func (c *Container) initInferenceClients() (*llm.Client, *speech.STTClient, *speech.TTSClient) {
	switch c.Config.Assistant.Provider {
	case "openai":
		provider := aiopenai.NewOpenAIProvider(c.Config.Assistant.OpenAIAPIKey)
		logx.Info("Using OpenAI inference backend")
		return llm.NewClient(provider), speech.NewSTTClient(provider), speech.NewTTSClient(provider)
	default:
		provider := pythonapi.NewProvider(
			c.Config.Assistant.PythonAPIURL,
			c.Config.Assistant.RequestTimeout,
		)
		logx.Infof("Using Python inference backend (%s)", c.Config.Assistant.PythonAPIURL)
		return llm.NewClient(provider), speech.NewSTTClient(provider), speech.NewTTSClient(provider)
	}
}

// Cleanup closes all connections
func (c *Container) Cleanup() {
	logx.Info("Cleaning up resources...")

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logx.Errorf("Error closing database: %v", err)
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logx.Errorf("Error closing Redis: %v", err)
		}
	}

	logx.Info("Cleanup completed")
}

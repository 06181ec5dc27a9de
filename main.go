package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/pixelpress/pixelpress/config"
	"github.com/pixelpress/pixelpress/internal/components/mysql"
	"github.com/pixelpress/pixelpress/internal/modules/codec"
	"github.com/pixelpress/pixelpress/internal/modules/logs"
	"github.com/pixelpress/pixelpress/internal/modules/model"
	"github.com/pixelpress/pixelpress/internal/modules/pipeline"
	"github.com/pixelpress/pixelpress/internal/modules/queue"
	"github.com/pixelpress/pixelpress/internal/modules/storage"
	"github.com/pixelpress/pixelpress/internal/modules/storage/ali"
	"github.com/pixelpress/pixelpress/internal/modules/storage/local"
	"github.com/pixelpress/pixelpress/internal/service/http"
	"github.com/pixelpress/pixelpress/internal/service/http/handler"
	"github.com/pixelpress/pixelpress/tools"
)

var (
	httpPort   string
	configPath string
)

func init() {
	flag.StringVar(&httpPort, "http-port", ":80", "listen http port")
	flag.StringVar(&configPath, "config", "config.yml", "config file path")
}

func main() {
	flag.Parse()
	config.Init(configPath)
	logs.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	queue.InitArtifactTaskQueue(ctx, wg)

	if config.GConfig.MySQL.Enabled() {
		mysql.InitMySQL(config.GConfig.MySQL)
		mysql.DB.AutoMigrate(&model.User{}, &model.CompressionRecord{})
	} else {
		logs.Logger.Warn().Msg("no database configured, auth and history are unavailable")
	}

	switch config.GConfig.StorageSupplier {
	case "ali_oss":
		expires := tools.PanicOnError(time.ParseDuration(config.GConfig.URLExpires))
		storage.Artifacts = ali.NewClient(config.GConfig.AliOss, expires)
	default:
		storage.Artifacts = tools.PanicOnError(local.NewStore(config.GConfig.UploadDir))
	}

	codec.Startup(config.GConfig.MaxConcurrent)

	handler.InitCompress(pipeline.New(storage.Artifacts, config.GConfig.MaxConcurrent))

	osSignal := make(chan os.Signal, 1)
	signal.Notify(osSignal, syscall.SIGINT, syscall.SIGTERM)
	go func(ch chan os.Signal) {
		<-ch
		cancel()
		wg.Wait()
		codec.Shutdown()
		os.Exit(0)
	}(osSignal)

	http.Serve(httpPort)
}

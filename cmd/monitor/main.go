package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/api/handler"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/api/routes"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/config"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/engine"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/events"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/notify"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/realtime"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/repository"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/scheduler"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/service"
	"github.com/Devashish-Jain/Uptime-Sentinel/internal/monitor/state"
	"github.com/Devashish-Jain/Uptime-Sentinel/pkg/infra"
	"github.com/Devashish-Jain/Uptime-Sentinel/pkg/logger"
	"github.com/Devashish-Jain/Uptime-Sentinel/pkg/mail"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer("./log/monitor.log")
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "monitor"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	// set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	// set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host: appConfig.Redis.Host,
		Port: appConfig.Redis.Port,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	} else {
		zapLogger.Info("connected to redis successfully")
	}
	defer redisClient.Close()

	// set up elasticsearch
	esClient, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
		Addresses: appConfig.Elastic.Addresses,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
	} else {
		zapLogger.Info("connected to elasticsearch successfully")
	}

	// set up probing engine
	browserEngine := engine.NewBrowserEngine(zapLogger)
	defer func() {
		if e := browserEngine.Shutdown(); e != nil {
			zapLogger.Error("failed to shut down probing engine", zap.Error(e))
		}
	}()

	stateConfig := state.Config{
		NormalInterval:           appConfig.Monitor.NormalInterval,
		DowntimeMonitoringWindow: appConfig.Monitor.DowntimeMonitoringWindow,
		PauseWindow:              appConfig.Monitor.PauseWindow,
		AlertThreshold:           appConfig.Monitor.AlertThreshold,
		RecoveryThreshold:        appConfig.Monitor.RecoveryThreshold,
		HistoryCap:               appConfig.Monitor.HistoryCap,
	}

	// set up dependencies
	siteRepo := repository.NewSiteRepository(db)
	uptimeRepo := repository.NewUptimeRepository(esClient)
	mailSender := mail.NewMailSender(appConfig.SMTP.Email, appConfig.SMTP.Password, appConfig.SMTP.Host, appConfig.SMTP.Port)
	gate := notify.NewGate(notify.NewMailNotifier(mailSender), zapLogger)
	publisher := realtime.NewRedisPublisher(redisClient, appConfig.Redis.Channel)
	stream := events.NewKafkaStream(infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.CheckTopic))
	immediateChecker := engine.NewImmediateChecker(zapLogger, appConfig.Monitor.ImmediateProbeTimeout, nil)
	siteService := service.NewSiteService(siteRepo, uptimeRepo, immediateChecker, mailSender, stateConfig)
	siteHandler := handler.NewSiteHandler(handler.NewLogger(zapLogger), siteService)

	// Create cronjob for daily report
	cronJob := cron.New()
	_, err = cronJob.AddFunc("0 0 * * *", func() {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 30*time.Second)
		zapLogger.Info("cronjob called")
		e := siteService.ReportSitesInformation(ctx2, time.Now().Add(-time.Hour*24), time.Now(), appConfig.SMTP.AdminMailAddress)
		cancel2()
		if e != nil {
			zapLogger.Error("failed to generate daily report", zap.Error(e))
		}
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for daily report", zap.Error(err))
	}
	cronJob.Start()

	s := scheduler.NewScheduler(scheduler.Config{
		TickInterval:     appConfig.Monitor.TickInterval,
		ProbeTimeout:     appConfig.Monitor.ProbeTimeout,
		ProbeConcurrency: appConfig.Monitor.ProbeConcurrency,
		InterProbeDelay:  appConfig.Monitor.InterProbeDelay,
		State:            stateConfig,
	}, siteRepo, browserEngine, gate, publisher, stream, zapLogger)
	s.Start()

	// set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.AddSiteRoutes(r, siteHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", appConfig.Server.HTTPPort),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	s.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}

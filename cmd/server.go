/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/JohnPitter/church-management-sub005/internal/api"
	"github.com/JohnPitter/church-management-sub005/internal/config"
	"github.com/JohnPitter/church-management-sub005/internal/container"
	"github.com/JohnPitter/church-management-sub005/internal/metrics"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the API server",
	Long: `Start the Church Management API server.
The server will listen on the configured host and port,
and provide REST API interfaces for community administration.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. 加载配置
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// 2. 初始化容器
		ctr, err := container.NewContainer(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize container: %w", err)
		}
		defer ctr.Close()

		// 3. 初始化链路追踪
		if cfg.Tracing.Enabled {
			if err := api.InitTracing("church-management", cfg.Tracing.JaegerEndpoint); err != nil {
				return fmt.Errorf("failed to initialize tracing: %w", err)
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = api.ShutdownTracing(shutdownCtx)
			}()
		}

		// 4. 监听配置文件变更,运行时热更新日志级别
		if configPath != "" {
			watcher := config.NewConfigWatcher(cfg, configPath)
			watcher.OnConfigChange(func(newCfg *config.Config) {
				level, err := logrus.ParseLevel(newCfg.Log.Level)
				if err != nil {
					ctr.Logger().WithError(err).Warn("invalid log level in reloaded config")
					return
				}
				ctr.Logger().SetLevel(level)
				api.SetLoggerLevel(level)
				ctr.Logger().WithField("level", newCfg.Log.Level).Info("log level reloaded")
			})
			if err := watcher.Start(); err != nil {
				ctr.Logger().WithError(err).Warn("failed to start config watcher")
			} else {
				defer watcher.Stop()
			}
		}

		// 5. 启动 WebSocket Hub
		go ctr.Hub().Run()

		// 6. 启动指标收集器,定期上报连接池指标
		collector := metrics.NewCollector(ctr.DB(), 15*time.Second)
		collector.Start()
		defer collector.Stop()

		// 7. 启动备份调度器
		schedulerCtx, schedulerCancel := context.WithCancel(context.Background())
		defer schedulerCancel()
		if err := ctr.BackupScheduler().Start(schedulerCtx); err != nil {
			ctr.Logger().WithError(err).Warn("failed to start backup scheduler")
		}

		// 8. 设置路由
		router := api.SetupRoutes(cfg, ctr.Hub(), ctr.KeycloakValidator(), ctr.DB(), ctr.OpenFGAClient(), ctr.Controllers())

		// 自定义 NoRoute 处理器,返回 JSON 格式的 404
		router.NoRoute(func(c *gin.Context) {
			api.Error(c, http.StatusNotFound, "route not found", "the requested route does not exist")
		})

		// 9. 启动服务器
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		srv := &http.Server{
			Addr:    addr,
			Handler: router,
		}

		// 启动服务器(在 goroutine 中)
		go func() {
			log.Printf("Server starting on %s", addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Failed to start server: %v", err)
			}
		}()

		// 等待中断信号
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down server...")

		// 优雅关闭
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}

		// 等待在途通知投递完成
		ctr.NotificationService().Flush()

		log.Println("Server exited")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	// 服务器配置标志
	serverCmd.Flags().String("config", "", "Config file path (default: config.yaml)")
	serverCmd.Flags().String("host", "0.0.0.0", "Server host")
	serverCmd.Flags().Int("port", 8080, "Server port")
}

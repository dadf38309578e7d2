package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"gestman-backend/internal/config"
	"gestman-backend/internal/trigger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	once := flag.Bool("once", false, "run a single scan and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration:", err)
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	t := trigger.New(cfg.AlertScanURL, nil)

	if *once {
		summary, err := t.Run(context.Background())
		if err != nil {
			logrus.Fatal("Alert scan failed:", err)
		}
		logrus.WithFields(logrus.Fields{
			"evaluated": summary.Evaluated,
			"created":   summary.Created,
			"skipped":   summary.Skipped,
		}).Info("Alert scan completed")
		return
	}

	c, err := trigger.Schedule(cfg.AlertScanCron, t)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.WithFields(logrus.Fields{
		"schedule": cfg.AlertScanCron,
		"url":      cfg.AlertScanURL,
	}).Info("Alert trigger started")
	c.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	<-c.Stop().Done()
	logrus.Info("Alert trigger stopped")
}

package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/zvrva/hoteldesk/config"
	"github.com/zvrva/hoteldesk/internal/bootstrap"
)

func main() {
	logrus.SetFormatter(new(logrus.TextFormatter))
	logrus.SetOutput(os.Stderr)

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	if err := bootstrap.Run(cfg, os.Stdin, os.Stdout); err != nil {
		logrus.Fatalf("session error: %v", err)
	}
}

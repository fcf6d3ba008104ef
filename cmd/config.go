package main

import "time"

type Config struct {
	Host            string        `env:"HOST"`
	Port            int           `env:"PORT,default=5000" validate:"min=1,max=65535"`
	ChatsFile       string        `env:"CHATS_FILE,default=data/chats.json" validate:"required"`
	TypingDelay     time.Duration `env:"TYPING_DELAY,default=5s" validate:"min=0"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	FrontendURL     string        `env:"FRONTEND_URL,default=*" validate:"required"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=30s" validate:"min=0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s" validate:"min=0"`
}

package api

import (
	"time"
)

type Configuration struct {
	Env                 string
	AppName             string
	Port                string
	AppUrl              string
	RequestLoggingLevel string
	TokenLifetimeMinute int
	DefaultTimeout      time.Duration
}

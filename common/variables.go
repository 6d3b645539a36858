package common

import (
	"time"
)

const (
	DefaultRepository = `Maven`
)

var (
	Version        string
	When           int64
	ControllerType string
	LogLinenumbers bool
	LogHides       []string
)

func init() {
	Version = `v1.4.0`
	When = time.Now().Unix()
	ControllerType = `user`
}

package sse_test

import (
	"io"
	"log"
)

func init() {
	// 將日誌輸出重定向到io.Discard
	log.SetOutput(io.Discard)
}

type Message struct {
	Topic string `json:"topic"`
	Data  string `json:"data"`
}

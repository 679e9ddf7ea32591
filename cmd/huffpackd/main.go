package main

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"

	"github.com/seiflotfy/huffpack/internal/handler"
	"github.com/seiflotfy/huffpack/internal/router"
	"github.com/seiflotfy/huffpack/internal/service"
)

var log = logging.MustGetLogger("huffpackd")

const defaultCacheSize = 1024

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	cacheSize := defaultCacheSize
	if v := os.Getenv("CACHE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Fatalf("invalid CACHE_SIZE %q", v)
		}
		cacheSize = n
	}

	svc, err := service.NewArchiveService(cacheSize)
	if err != nil {
		log.Fatalf("initializing archive service: %v", err)
	}
	h := handler.NewArchiveHandler(svc)

	r := gin.Default()
	router.Register(r, router.Dependencies{ArchiveHandler: h})

	addr := ":" + port
	log.Infof("starting huffpackd at %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

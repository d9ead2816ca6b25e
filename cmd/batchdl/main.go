package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"syscall"

	"github.com/khushveer007/batchdl/internal/batch"
	"github.com/khushveer007/batchdl/internal/config"
	"github.com/khushveer007/batchdl/internal/fetch"
	"github.com/khushveer007/batchdl/internal/logger"
	"github.com/khushveer007/batchdl/pkg/httpclient"
)

// batchURLs is the fixed demonstration batch. Mirrored file sizes vary
// so the run exercises both short and long transfers.
var batchURLs = []string{
	"https://www.rust-lang.org/static/images/rust-logo-blk.svg",
	"https://cdn.jsdelivr.net/npm/bootstrap@5.2.3/dist/css/bootstrap.min.css",
	"https://storage.googleapis.com/golang/go1.17.6.linux-amd64.tar.gz",
	"https://github.com/cli/cli/releases/download/v2.23.0/gh_2.23.0_linux_amd64.tar.gz",
	"https://cdn.jsdelivr.net/npm/bootstrap@5.2.3/dist/js/bootstrap.bundle.min.js",
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return 1
	}

	logger.Init(logger.ParseLevel(cfg.LogLevel), os.Stderr)

	if err := os.MkdirAll(cfg.DownloadDir, 0o755); err != nil {
		logger.Errorf("failed to create download directory %s: %v", cfg.DownloadDir, err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Warnf("received %v, cancelling batch", sig)
		cancel()
	}()

	fetcher := fetch.New(httpclient.NewClient(cfg.UserAgent))

	dispatcher, err := batch.NewDispatcher(fetcher, cfg.Concurrency)
	if err != nil {
		logger.Errorf("failed to create dispatcher: %v", err)
		return 1
	}

	tasks := buildTasks(cfg.DownloadDir)
	logger.Infof("starting batch of %d download(s), concurrency limit %d", len(tasks), cfg.Concurrency)

	result := dispatcher.Run(ctx, tasks)

	if result.Failed() > 0 {
		return 1
	}

	return 0
}

func buildTasks(dir string) []batch.Task {
	tasks := make([]batch.Task, 0, len(batchURLs))

	for i, url := range batchURLs {
		name := path.Base(url)
		dest := filepath.Join(dir, fmt.Sprintf("%03d-%s", i+1, name))
		tasks = append(tasks, batch.NewTask(i+1, url, dest))
	}

	return tasks
}

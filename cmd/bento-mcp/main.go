package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bentonow/bento-mcp/internal/config"
	"github.com/bentonow/bento-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:   "bento-mcp",
		Short: "Bento MCP server",
		RunE:  run,
	}

	root.PersistentFlags().String("log-level", "info", "Log level")
	root.PersistentFlags().Bool("http", false, "Serve over streamable HTTP instead of stdio")
	root.PersistentFlags().Int("port", 8000, "HTTP port")
	root.PersistentFlags().String("host", "127.0.0.1", "HTTP host")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("bento-mcp: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := mcp.DefaultConfig()
	srv := mcp.New(cfg)

	useHTTP, _ := cmd.Flags().GetBool("http")
	if !useHTTP {
		cfg.Log.Info("serving MCP over stdio")
		return srv.ServeStdio()
	}

	host, _ := cmd.Flags().GetString("host")
	port, _ := cmd.Flags().GetInt("port")
	addr := host + ":" + strconv.Itoa(port)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		cfg.Log.Info("serving MCP over HTTP", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}

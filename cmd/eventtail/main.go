package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"nuamx/internal/config"
)

// eventtail subscribes to the rating event channel and prints each payload.
// A down broker exits cleanly instead of crashing.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	log.Printf("eventtail: broker=%s channel=%s", cfg.Events.Addr(), cfg.Events.Channel)

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Events.Addr(),
		Password: cfg.Events.Password,
		DB:       cfg.Events.DB,
	})
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	err = client.Ping(pingCtx).Err()
	cancel()
	if err != nil {
		log.Printf("eventtail: broker not reachable, nothing to tail: %v", err)
		return
	}

	sub := client.Subscribe(ctx, cfg.Events.Channel)
	defer sub.Close()

	log.Printf("eventtail: subscribed to %q", cfg.Events.Channel)
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			log.Println("eventtail: stopped")
			return
		case msg, ok := <-ch:
			if !ok {
				log.Println("eventtail: subscription closed")
				return
			}
			if !json.Valid([]byte(msg.Payload)) {
				log.Printf("eventtail: non-JSON payload: %q", msg.Payload)
				continue
			}
			log.Printf("eventtail: %s", msg.Payload)
		}
	}
}

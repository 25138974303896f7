package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type IRedis interface {
	SetAudioCache(ctx context.Context, key string, audio []byte, expiration time.Duration) error
	GetAudioCache(ctx context.Context, key string) ([]byte, error)
	Publish(ctx context.Context, channel string, payload []byte) error
	Subscribe(ctx context.Context, channel string) <-chan []byte
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func (r *redisClient) SetAudioCache(ctx context.Context, key string, audio []byte, expiration time.Duration) error {
	logrus.Debug(fmt.Sprintf("Caching audio for key %s with expiration %v", key, expiration))
	err := r.client.Set(ctx, key, audio, expiration).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error caching audio for key %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) GetAudioCache(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logrus.Debug(fmt.Sprintf("Audio cache miss for key %s", key))
		return nil, err
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading audio cache for key %s: %v", key, err))
		return nil, err
	}
	return val, nil
}

func (r *redisClient) Publish(ctx context.Context, channel string, payload []byte) error {
	if err := r.client.Publish(ctx, channel, payload).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error publishing to channel %s: %v", channel, err))
		return err
	}
	return nil
}

// Subscribe forwards messages from the channel until ctx is cancelled. The
// returned channel is closed when the subscription ends.
func (r *redisClient) Subscribe(ctx context.Context, channel string) <-chan []byte {
	sub := r.client.Subscribe(ctx, channel)
	out := make(chan []byte)

	go func() {
		defer close(out)
		defer sub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				out <- []byte(msg.Payload)
			}
		}
	}()

	return out
}

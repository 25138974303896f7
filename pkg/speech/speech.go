package speech

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// TranscriptEvent is one message from the streaming recognition gateway.
// Interim events carry partial text; a final event closes out one utterance.
type TranscriptEvent struct {
	Text    string `json:"text"`
	IsFinal bool   `json:"is_final"`
	Error   string `json:"error,omitempty"`
}

type IRecognizer interface {
	Connect(ctx context.Context) error
	IsConnected() bool
	SendAudio(chunk []byte) error
	Events() <-chan TranscriptEvent
	Close()
}

type recognizerClient struct {
	conn         *websocket.Conn
	events       chan TranscriptEvent
	mu           sync.Mutex
	pingInterval time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
	closed       bool
}

func NewRecognizerClient() IRecognizer {
	client := &recognizerClient{
		events:       make(chan TranscriptEvent, 16),
		pingInterval: 30 * time.Second,
		readTimeout:  60 * time.Second,
		writeTimeout: 5 * time.Second,
	}

	go func() {
		if err := client.Connect(context.Background()); err != nil {
			log.Printf("Initial connection to speech gateway failed: %v. Will retry on demand.", err)
		} else {
			log.Printf("Successfully connected to speech gateway")
		}
	}()

	return client
}

func (c *recognizerClient) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A closed client may be revived; Close only releases the current
	// connection and mutes its error events.
	c.closed = false

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}

	url := os.Getenv("SPEECH_GATEWAY_URL")
	if url == "" {
		url = "ws://localhost:8002/api/v1/stt/ws"
	}

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	conn.SetPingHandler(func(appData string) error {
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(c.writeTimeout))
		if err != nil {
			log.Printf("Error sending pong: %v", err)
		}
		return nil
	})

	c.conn = conn

	go c.readLoop(conn)
	go c.keepAlive(conn)

	return nil
}

func (c *recognizerClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

func (c *recognizerClient) SendAudio(chunk []byte) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		if err := c.Connect(context.Background()); err != nil {
			return fmt.Errorf("cannot connect to speech gateway: %w", err)
		}
		c.mu.Lock()
		conn = c.conn
		c.mu.Unlock()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	if err := conn.WriteMessage(websocket.BinaryMessage, chunk); err != nil {
		c.conn = nil
		conn.Close()
		return fmt.Errorf("error sending audio chunk: %w", err)
	}

	return nil
}

func (c *recognizerClient) Events() <-chan TranscriptEvent {
	return c.events
}

func (c *recognizerClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

func (c *recognizerClient) readLoop(conn *websocket.Conn) {
	for {
		conn.SetReadDeadline(time.Now().Add(c.readTimeout))
		_, message, err := conn.ReadMessage()
		if err != nil {
			c.mu.Lock()
			if c.conn == conn {
				c.conn = nil
			}
			closed := c.closed
			c.mu.Unlock()
			conn.Close()

			if !closed {
				c.events <- TranscriptEvent{Error: err.Error()}
			}
			return
		}

		var event TranscriptEvent
		if err := json.Unmarshal(message, &event); err != nil {
			log.Printf("Error unmarshaling transcript event: %v", err)
			continue
		}

		c.events <- event
	}
}

func (c *recognizerClient) keepAlive(conn *websocket.Conn) {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		if c.conn != conn {
			c.mu.Unlock()
			return
		}

		err := conn.WriteControl(
			websocket.PingMessage,
			[]byte{},
			time.Now().Add(c.writeTimeout),
		)
		if err != nil {
			log.Printf("Ping failed for speech gateway, marking connection as dead: %v", err)
			c.conn = nil
			conn.Close()
			c.mu.Unlock()
			return
		}

		c.mu.Unlock()
	}
}

package voice

import (
	"errors"
	"sync"
)

var ErrAlreadyListening = errors.New("recognizer already running")

// RecognizerConfig is what a browser recognizer should be configured with.
type RecognizerConfig struct {
	Lang           string `json:"lang"`
	Continuous     bool   `json:"continuous"`
	InterimResults bool   `json:"interim_results"`
}

// DefaultRecognizerConfig listens continuously in US English and streams interim results.
func DefaultRecognizerConfig() RecognizerConfig {
	return RecognizerConfig{Lang: "en-US", Continuous: true, InterimResults: true}
}

// RelayEngine is the server-side end of a recognizer that runs in the client.
// Start and Stop only track whether the client should be streaming results.
type RelayEngine struct {
	mu      sync.Mutex
	config  RecognizerConfig
	running bool
}

func NewRelayEngine(cfg RecognizerConfig) *RelayEngine {
	if cfg.Lang == "" {
		cfg.Lang = DefaultRecognizerConfig().Lang
	}
	return &RelayEngine{config: cfg}
}

func (e *RelayEngine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return ErrAlreadyListening
	}
	e.running = true
	return nil
}

func (e *RelayEngine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.running = false
	return nil
}

func (e *RelayEngine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

func (e *RelayEngine) Config() RecognizerConfig {
	return e.config
}

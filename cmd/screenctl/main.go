package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/screenctl/internal/logging"
	"github.com/danmuck/screenctl/internal/protocol"
	"github.com/danmuck/screenctl/internal/session"
)

func main() {
	cfgPath := flag.String("config", "", "config path (defaults to the user config dir)")
	streamPath := flag.String("stream", "", "binary display stream to play (overrides config)")
	demo := flag.Bool("demo", false, "play the built-in demo stream")
	validate := flag.Bool("validate", false, "decode and validate the stream without playing it")
	flag.Parse()

	logging.ConfigureRuntime()

	cfg, err := loadPlayerConfig(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if *streamPath != "" {
		cfg.Stream = *streamPath
	}
	if *demo {
		cfg.Stream = ""
	}

	stream, err := resolveStream(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("read stream")
	}

	if *validate {
		n, err := validateStream(stream)
		if err != nil {
			log.Fatal().Err(err).Int("records", n).Msg("invalid stream")
		}
		log.Info().Int("records", n).Msg("stream valid")
		return
	}

	if err := session.Play(stream); err != nil {
		log.Fatal().Err(err).Msg("playback failed")
	}
}

func resolveStream(cfg playerConfig) ([]byte, error) {
	if cfg.Stream == "" {
		return demoStream()
	}
	data, err := os.ReadFile(cfg.Stream)
	if err != nil {
		return nil, fmt.Errorf("read stream %s: %w", cfg.Stream, err)
	}
	return data, nil
}

// validateStream walks every record through framing and arity checks, without
// touching a terminal. Records after an End are still checked here; playback
// would never reach them.
func validateStream(stream []byte) (int, error) {
	dec := protocol.NewDecoder(stream)
	n := 0
	for {
		rec, err := dec.Next()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if _, err := protocol.Parse(rec); err != nil {
			return n, err
		}
		n++
	}
}

// SPDX-License-Identifier: EPL-2.0

// Command ucra-render renders a JSON score through the UCRA engine and
// writes the result to a WAV file.
//
// Usage:
//
//	ucra-render -score score.json -out out.wav [-configFilePath config.yaml]
//
// The config file (and its defaults) control sample rate, channel count,
// output format, logging, and the optional manifest and flag-rule files.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	ucra "github.com/ucra/go-ucra"
	"github.com/ucra/go-ucra/flagmap"
	"github.com/ucra/go-ucra/formats/wav"
	"github.com/ucra/go-ucra/manifest"
)

// score is the JSON input: the notes to render plus optional caller flags
// that run through the flag-mapping rules.
type score struct {
	Notes []scoreNote       `json:"notes"`
	Flags map[string]string `json:"flags,omitempty"`
}

type scoreNote struct {
	StartSec    float64 `json:"start_sec"`
	DurationSec float64 `json:"duration_sec"`
	MIDINote    int16   `json:"midi_note"`
	Velocity    uint8   `json:"velocity"`
	Lyric       string  `json:"lyric,omitempty"`
}

func loadScore(path string) (*score, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read score: %w", err)
	}
	var s score
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse score: %w", err)
	}
	return &s, nil
}

func run(scorePath, outPath string) error {
	s, err := loadScore(scorePath)
	if err != nil {
		return err
	}

	sampleRate := uint32(viper.GetInt("samplerate"))
	channels := uint32(viper.GetInt("channels"))

	// Optional manifest check: refuse formats the engine doesn't declare.
	if manifestPath := viper.GetString("manifest"); manifestPath != "" {
		m, err := manifest.Load(manifestPath)
		if err != nil {
			return fmt.Errorf("load manifest: %w", err)
		}
		slog.Info("loaded engine manifest", "name", m.Name, "version", m.Version)
		if !m.SupportsRate(sampleRate) {
			return fmt.Errorf("engine %q does not support %d Hz", m.Name, sampleRate)
		}
		if !m.SupportsChannels(channels) {
			return fmt.Errorf("engine %q does not support %d channels", m.Name, channels)
		}
	}

	// Optional flag mapping: translate caller flags into engine options.
	options := s.Flags
	if rulesPath := viper.GetString("flagrules"); rulesPath != "" {
		rules, err := flagmap.LoadRules(rulesPath)
		if err != nil {
			return fmt.Errorf("load flag rules: %w", err)
		}
		mapped, warnings := flagmap.Apply(rules, s.Flags)
		for _, w := range warnings {
			slog.Warn("flag mapping", "warning", w)
		}
		options = mapped
	}

	eng, err := ucra.New()
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	defer eng.Close()

	info, err := eng.Info()
	if err != nil {
		return fmt.Errorf("engine info: %w", err)
	}
	slog.Info("engine ready", "info", info)

	notes := make([]ucra.NoteSegment, len(s.Notes))
	for i, n := range s.Notes {
		notes[i] = ucra.NoteSegment{
			StartSec:    n.StartSec,
			DurationSec: n.DurationSec,
			MIDINote:    n.MIDINote,
			Velocity:    n.Velocity,
			Lyric:       n.Lyric,
		}
	}

	res, err := eng.Render(&ucra.RenderConfig{
		SampleRate: sampleRate,
		Channels:   channels,
		Notes:      notes,
		Options:    options,
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	slog.Info("rendered score",
		"notes", len(notes),
		"frames", res.Frames(),
		"sampleRate", res.SampleRate(),
		"channels", res.Channels(),
	)

	format := wav.Float32
	if viper.GetString("format") == "pcm16" {
		format = wav.PCM16
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	// the result view is still valid here: no further render happens
	// before the write completes
	if err := wav.WriteResult(out, res, format); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}

	slog.Info("wrote output", "path", outPath)
	return nil
}

func main() {
	configFilePath := flag.String("configFilePath", "config.yaml", "Set the file path to the config file.")
	scorePath := flag.String("score", "", "Path to the JSON score to render.")
	outPath := flag.String("out", "out.wav", "Path of the WAV file to write.")
	flag.Parse()

	loadConfig(*configFilePath)
	logFilePointer, err := configureLogger(viper.GetString("loglevel"), viper.GetString("logfile"))
	if err != nil {
		slog.Error("error while configuring default logger", "err", err)
		os.Exit(1)
	}
	if logFilePointer != nil {
		defer logFilePointer.Close()
	}

	if *scorePath == "" {
		slog.Error("no score given, use -score")
		os.Exit(1)
	}

	if err := run(*scorePath, *outPath); err != nil {
		slog.Error("render failed", "err", err)
		os.Exit(1)
	}
}

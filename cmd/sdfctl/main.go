// sdfctl inspects and converts dialogue files produced by the generation
// pipeline, and manages the local dialogue dataset.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yuriak/SpeechDialogueFactory/internal/config"
	"github.com/yuriak/SpeechDialogueFactory/internal/dataset"
	"github.com/yuriak/SpeechDialogueFactory/internal/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	initLogger(cfg)
	os.Exit(run(cfg, os.Args, os.Stdout, os.Stderr))
}

func run(cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		usage(stderr)
		return 2
	}

	switch args[1] {
	case "validate":
		return handleValidate(args[2:], stdout, stderr)
	case "convert":
		return handleConvert(cfg, args[2:], stderr)
	case "show":
		return handleShow(args[2:], stdout, stderr)
	case "store":
		return handleStore(cfg, args[2:], stdout, stderr)
	default:
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `usage: sdfctl <command> [flags]

commands:
  validate <file.json>                 check a dialogue file against the schema
  convert [flags] <in> <out>           re-encode a dialogue (json <-> checkpoint)
  show [-checkpoint] <file>            print the conversation transcript
  store put|get|list|delete [...]      manage the dialogue dataset`)
}

func handleValidate(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		fmt.Fprintln(stderr, "validate requires <file.json>")
		return 2
	}

	d, err := models.LoadDialogueJSON(fs.Arg(0))
	if err != nil {
		log.Error().Err(err).Str("file", fs.Arg(0)).Msg("validation failed")
		return 1
	}
	fmt.Fprintf(stdout, "%s: valid (%d turns)\n", fs.Arg(0), len(d.Conversation))
	return 0
}

func handleConvert(cfg *config.Config, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fromCkpt := fs.Bool("from-checkpoint", false, "input is a checkpoint blob instead of JSON")
	toCkpt := fs.Bool("to-checkpoint", false, "write a checkpoint blob instead of JSON")
	pretty := fs.Bool("pretty", cfg.PrettyJSON, "indent JSON output")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "convert requires <in> <out>")
		return 2
	}
	in, out := fs.Arg(0), fs.Arg(1)

	d, err := loadDialogue(in, *fromCkpt)
	if err != nil {
		log.Error().Err(err).Str("file", in).Msg("load failed")
		return 1
	}

	if *toCkpt {
		err = d.SaveCheckpoint(out)
	} else {
		err = d.SaveJSON(out, *pretty)
	}
	if err != nil {
		log.Error().Err(err).Str("file", out).Msg("write failed")
		return 1
	}
	log.Info().Str("from", in).Str("to", out).Msg("converted")
	return 0
}

func handleShow(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(stderr)
	ckpt := fs.Bool("checkpoint", false, "input is a checkpoint blob instead of JSON")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		fmt.Fprintln(stderr, "show requires <file>")
		return 2
	}

	d, err := loadDialogue(fs.Arg(0), *ckpt)
	if err != nil {
		log.Error().Err(err).Str("file", fs.Arg(0)).Msg("load failed")
		return 1
	}

	conv := d.Turns()
	if len(conv.Utterances) == 0 {
		fmt.Fprintln(stdout, "(no conversation yet)")
		return 0
	}
	for _, turn := range conv.Utterances {
		fmt.Fprintf(stdout, "[%s] %s (%s): %s\n",
			turn.SpeakerID, turn.SpeakerName, turn.Emotion, turn.Text)
	}
	return 0
}

func handleStore(cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, "store requires put|get|list|delete")
		return 2
	}
	sub, args := args[0], args[1:]

	fs := flag.NewFlagSet("store "+sub, flag.ContinueOnError)
	fs.SetOutput(stderr)
	dataFile := fs.String("data", filepath.Join(cfg.DataDir, cfg.DatasetFile), "dataset file")
	outFile := fs.String("o", "", "write fetched dialogue to this JSON file (get only)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	store, err := dataset.Open(*dataFile)
	if err != nil {
		log.Error().Err(err).Str("file", *dataFile).Msg("open dataset failed")
		return 1
	}
	defer store.Close()

	switch sub {
	case "put":
		if fs.NArg() != 1 {
			fmt.Fprintln(stderr, "store put requires <file.json>")
			return 2
		}
		d, err := models.LoadDialogueJSON(fs.Arg(0))
		if err != nil {
			log.Error().Err(err).Str("file", fs.Arg(0)).Msg("load failed")
			return 1
		}
		id, err := store.Put(d)
		if err != nil {
			log.Error().Err(err).Msg("store put failed")
			return 1
		}
		fmt.Fprintln(stdout, id)
		return 0

	case "get":
		if fs.NArg() != 1 {
			fmt.Fprintln(stderr, "store get requires <id>")
			return 2
		}
		entry, err := store.Get(fs.Arg(0))
		if err != nil {
			log.Error().Err(err).Msg("store get failed")
			return 1
		}
		if *outFile != "" {
			if err := entry.Dialogue.SaveJSON(*outFile, cfg.PrettyJSON); err != nil {
				log.Error().Err(err).Str("file", *outFile).Msg("write failed")
				return 1
			}
			return 0
		}
		data, err := entry.Dialogue.ToJSON(cfg.PrettyJSON)
		if err != nil {
			log.Error().Err(err).Msg("encode failed")
			return 1
		}
		fmt.Fprintln(stdout, string(data))
		return 0

	case "list":
		entries, err := store.List()
		if err != nil {
			log.Error().Err(err).Msg("store list failed")
			return 1
		}
		for _, entry := range entries {
			fmt.Fprintf(stdout, "%s  %s  %d turns\n",
				entry.ID, entry.CreatedAt.Format(time.RFC3339), entry.Turns)
		}
		return 0

	case "delete":
		if fs.NArg() != 1 {
			fmt.Fprintln(stderr, "store delete requires <id>")
			return 2
		}
		if err := store.Delete(fs.Arg(0)); err != nil {
			if errors.Is(err, dataset.ErrNotFound) {
				fmt.Fprintln(stderr, err)
				return 1
			}
			log.Error().Err(err).Msg("store delete failed")
			return 1
		}
		return 0

	default:
		fmt.Fprintln(stderr, "store requires put|get|list|delete")
		return 2
	}
}

func loadDialogue(path string, checkpoint bool) (*models.Dialogue, error) {
	if checkpoint {
		return models.LoadDialogueCheckpoint(path)
	}
	return models.LoadDialogueJSON(path)
}

// initLogger configures the global zerolog logger.
func initLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Development gets human-readable console output.
	if cfg.AppEnv != "production" {
		output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

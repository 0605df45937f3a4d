package models

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// SaveJSON writes the full dialogue to a UTF-8 JSON file at path, creating
// or overwriting it. The write goes through a temp file and rename so a
// failure never leaves a truncated file behind.
func (d *Dialogue) SaveJSON(path string, pretty bool) error {
	data, err := d.ToJSON(pretty)
	if err != nil {
		return fmt.Errorf("encode dialogue: %w", err)
	}
	return writeFileAtomic(path, data)
}

// LoadDialogueJSON reads the JSON file at path and reconstructs a Dialogue,
// applying the same validation rules as construction.
func LoadDialogueJSON(path string) (*Dialogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, path, err)
	}
	return DialogueFromJSON(data)
}

// SaveCheckpoint writes the dialogue as an opaque gob blob. The encoding
// captures the whole object graph but is a same-process/same-version
// round-trip mechanism only — not an interchange format. External tools
// should target the JSON form instead.
func (d *Dialogue) SaveCheckpoint(path string) error {
	return saveGob(d, path)
}

// LoadDialogueCheckpoint reads a single dialogue written by SaveCheckpoint.
func LoadDialogueCheckpoint(path string) (*Dialogue, error) {
	var d Dialogue
	if err := loadGob(path, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// SaveCheckpointBatch writes an ordered batch of dialogues as a single blob.
func SaveCheckpointBatch(dialogues []*Dialogue, path string) error {
	return saveGob(dialogues, path)
}

// LoadDialogueCheckpointBatch reads a batch written by SaveCheckpointBatch,
// preserving order.
func LoadDialogueCheckpointBatch(path string) ([]*Dialogue, error) {
	var dialogues []*Dialogue
	if err := loadGob(path, &dialogues); err != nil {
		return nil, err
	}
	return dialogues, nil
}

func saveGob(v any, path string) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("encode checkpoint: %w", err)
	}
	return writeFileAtomic(path, buf.Bytes())
}

func loadGob(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDeserialize, path, err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create dir %s: %w", ErrIO, dir, err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: rename to %s: %w", ErrIO, path, err)
	}
	return nil
}

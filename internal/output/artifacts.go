package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// timestampLayout names artifact files down to the second.
const timestampLayout = "20060102_150405"

// Artifacts holds the paths of the files written for one run.
type Artifacts struct {
	PromptPath string
	ResultPath string
}

// WriteArtifacts persists the composed prompt and the model's response as
// two timestamped text files under dir. It is called only after a fully
// successful run; a failed run persists nothing.
func WriteArtifacts(dir string, t time.Time, prompt, result string) (Artifacts, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Artifacts{}, fmt.Errorf("creating output directory: %w", err)
	}

	stamp := t.Format(timestampLayout)
	a := Artifacts{
		PromptPath: filepath.Join(dir, fmt.Sprintf("prompt_%s.txt", stamp)),
		ResultPath: filepath.Join(dir, fmt.Sprintf("result_%s.txt", stamp)),
	}

	if err := os.WriteFile(a.PromptPath, []byte(prompt), 0o644); err != nil {
		return Artifacts{}, fmt.Errorf("writing prompt artifact: %w", err)
	}
	if err := os.WriteFile(a.ResultPath, []byte(result), 0o644); err != nil {
		return Artifacts{}, fmt.Errorf("writing result artifact: %w", err)
	}
	return a, nil
}

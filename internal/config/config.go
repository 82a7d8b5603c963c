package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"commentbox/internal/model"

	"gopkg.in/yaml.v3"
)

const (
	KeyAllowFutureDate      = "allow_future_date"
	KeyOrderOfComments      = "order_of_comments"
	KeyShowAddonCloseButton = "show_addon_close_button"

	EnvAllowFutureDate      = "COMMENTBOX_ALLOW_FUTURE_DATE"
	EnvOrderOfComments      = "COMMENTBOX_ORDER_OF_COMMENTS"
	EnvShowAddonCloseButton = "COMMENTBOX_SHOW_ADDON_CLOSE_BUTTON"
	EnvConfigDir            = "COMMENTBOX_CONFIG_DIR"
)

// Overrides carries explicitly set command-line values. Nil means unset.
type Overrides struct {
	AllowFutureDate      *bool
	OrderOfComments      *int
	ShowAddonCloseButton *bool
}

type Source struct {
	// Path is an explicit config file. When empty, DefaultPath is used and a
	// missing file is not an error.
	Path string

	// Getenv defaults to os.Getenv.
	Getenv func(string) string

	Overrides Overrides
}

// Note records a value that was ignored in favor of an earlier layer.
type Note struct {
	Source string `json:"source"`
	Key    string `json:"key"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

func (n Note) String() string {
	return fmt.Sprintf("%s %s=%q ignored: %s", n.Source, n.Key, n.Value, n.Reason)
}

// ConfigDir resolves the config directory through getenv (os.Getenv when
// nil).
func ConfigDir(getenv func(string) string) (string, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv(EnvConfigDir)); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".commentbox"), nil
}

func DefaultPath(getenv func(string) string) (string, error) {
	dir, err := ConfigDir(getenv)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load resolves settings from defaults, the YAML file, the environment and
// command-line overrides, in that order. Each option is checked on its own;
// an invalid value never aborts loading, it just leaves the previous value in
// place and is reported as a Note.
func Load(src Source) (model.Settings, []Note, error) {
	s := model.DefaultSettings()
	var notes []Note

	getenv := src.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	path := src.Path
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath(getenv)
		if err != nil {
			notes = append(notes, Note{Source: "file", Key: "path", Reason: err.Error()})
		}
		path = p
	}
	if path != "" {
		fileNotes, err := applyFile(&s, path, explicit)
		if err != nil {
			return model.DefaultSettings(), nil, err
		}
		notes = append(notes, fileNotes...)
	}

	notes = append(notes, applyEnv(&s, getenv)...)

	if v := src.Overrides.AllowFutureDate; v != nil {
		s.AllowFutureDate = *v
	}
	if v := src.Overrides.OrderOfComments; v != nil {
		s.OrderOfComments = model.Order(*v)
	}
	if v := src.Overrides.ShowAddonCloseButton; v != nil {
		s.ShowAddonCloseButton = *v
	}
	return s, notes, nil
}

func applyFile(s *model.Settings, path string, explicit bool) ([]Note, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil, nil
		}
		if explicit {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return []Note{{Source: "file", Key: path, Reason: err.Error()}}, nil
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return []Note{{Source: "file", Key: path, Reason: "malformed yaml: " + err.Error()}}, nil
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var notes []Note
	for _, key := range keys {
		v := raw[key]
		switch key {
		case KeyAllowFutureDate:
			if b, ok := v.(bool); ok {
				s.AllowFutureDate = b
			} else {
				notes = append(notes, fileNote(key, v, "expected bool"))
			}
		case KeyOrderOfComments:
			if n, ok := v.(int); ok {
				s.OrderOfComments = model.Order(n)
			} else {
				notes = append(notes, fileNote(key, v, "expected int"))
			}
		case KeyShowAddonCloseButton:
			if b, ok := v.(bool); ok {
				s.ShowAddonCloseButton = b
			} else {
				notes = append(notes, fileNote(key, v, "expected bool"))
			}
		default:
			notes = append(notes, fileNote(key, v, "unknown option"))
		}
	}
	return notes, nil
}

func fileNote(key string, v any, reason string) Note {
	return Note{Source: "file", Key: key, Value: fmt.Sprint(v), Reason: reason}
}

func applyEnv(s *model.Settings, getenv func(string) string) []Note {
	var notes []Note
	if v := strings.TrimSpace(getenv(EnvAllowFutureDate)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.AllowFutureDate = b
		} else {
			notes = append(notes, Note{Source: "env", Key: EnvAllowFutureDate, Value: v, Reason: "expected bool"})
		}
	}
	if v := strings.TrimSpace(getenv(EnvOrderOfComments)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.OrderOfComments = model.Order(n)
		} else {
			notes = append(notes, Note{Source: "env", Key: EnvOrderOfComments, Value: v, Reason: "expected int"})
		}
	}
	if v := strings.TrimSpace(getenv(EnvShowAddonCloseButton)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.ShowAddonCloseButton = b
		} else {
			notes = append(notes, Note{Source: "env", Key: EnvShowAddonCloseButton, Value: v, Reason: "expected bool"})
		}
	}
	return notes
}

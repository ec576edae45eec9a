package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hamed0406/sharewatch/internal/domain"
)

// LoadTargets reads the monitored target set from a YAML file. A missing
// file is not an error; monitoring just starts with an empty set until the
// API supplies one.
func LoadTargets(path string) (domain.TargetSet, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return domain.TargetSet{}, nil
	}
	if err != nil {
		return domain.TargetSet{}, fmt.Errorf("read targets file: %w", err)
	}

	var ts domain.TargetSet
	if err := yaml.Unmarshal(b, &ts); err != nil {
		return domain.TargetSet{}, fmt.Errorf("parse targets file: %w", err)
	}
	if err := ValidateTargets(ts); err != nil {
		return domain.TargetSet{}, err
	}
	return ts, nil
}

// SaveTargets persists the target set, writing to a temp file first so a
// crash mid-write never leaves a truncated config behind.
func SaveTargets(path string, ts domain.TargetSet) error {
	b, err := yaml.Marshal(ts)
	if err != nil {
		return fmt.Errorf("encode targets: %w", err)
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write targets file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace targets file: %w", err)
	}
	return nil
}

// ValidateTargets checks the structural requirements of a target set:
// required fields and unique keys. Access-mode problems on file shares are
// deliberately not rejected here; the probe reports them as error results
// so a bad entry never blocks the rest of the configuration.
func ValidateTargets(ts domain.TargetSet) error {
	seen := make(map[string]struct{}, ts.Len())

	for i, w := range ts.Websites {
		if w.URL == "" {
			return fmt.Errorf("website %d: url is required", i)
		}
		if _, dup := seen[w.Key()]; dup {
			return fmt.Errorf("duplicate target key %q", w.Key())
		}
		seen[w.Key()] = struct{}{}
	}

	for i, s := range ts.Stores {
		if s.ShareName == "" {
			return fmt.Errorf("file share %d: shareName is required", i)
		}
		key := s.Key()
		if key == "" {
			return fmt.Errorf("file share %d: needs accountName, name or sasUrl to form a key", i)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate target key %q", key)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/folio/internal/core/scoring"
)

// fixture is one offline scoring scenario. Amounts are in the base currency.
//
//	config:              # optional, merged over the default tables
//	  preferred_bonus: 5
//	candidate:
//	  title: Middlemarch
//	  purchase_price: 60
//	  value_mid: 100
//	  author: {id: 1, name: George Eliot, tier: TIER_1}
//	collection:
//	  - {id: 7, title: Adam Bede, author_id: 1}
type fixture struct {
	Config     scoring.Config     `yaml:"config"`
	Candidate  scoring.Candidate  `yaml:"candidate"`
	Collection scoring.Collection `yaml:"collection"`
}

// loadFixture reads a fixture file, or stdin when path is "-".
func loadFixture(path string, stdin io.Reader) (*fixture, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	return parseFixture(data)
}

// parseFixture decodes a fixture. Config keys merge over [scoring.DefaultConfig]:
// maps keep unlisted entries, lists replace the default list.
func parseFixture(data []byte) (*fixture, error) {
	f := &fixture{Config: scoring.DefaultConfig()}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("fixture is empty")
		}
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	if err := f.Config.Validate(); err != nil {
		return nil, fmt.Errorf("fixture config: %w", err)
	}
	return f, nil
}

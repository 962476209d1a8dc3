// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads report options from YAML.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"code.hybscloud.com/fix/internal/harness"
)

// Load reads path and returns validated options.
// Fields missing from the file keep harness.DefaultOptions values.
func Load(path string) (harness.Options, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return harness.Options{}, &OpError{
			Op:   "config.load",
			Kind: KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return Parse(path, b)
}

// Parse decodes b as YAML; path is used only in errors.
// Unknown keys are rejected.
func Parse(path string, b []byte) (harness.Options, error) {
	var dto YAMLConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return harness.Options{}, &OpError{
			Op:   "config.parse",
			Kind: KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return Map(path, dto)
}

// Map merges dto over the defaults and validates the result.
func Map(path string, dto YAMLConfig) (harness.Options, error) {
	opts := harness.DefaultOptions()
	if dto.Inputs != nil {
		opts.Inputs = append([]int(nil), (*dto.Inputs)...)
	}
	if dto.Threshold != nil {
		opts.Threshold = *dto.Threshold
	}
	if dto.Placeholder != nil {
		opts.Placeholder = *dto.Placeholder
	}
	if dto.MaxDepth != nil {
		opts.MaxDepth = *dto.MaxDepth
	}
	if dto.Variant != nil {
		v, err := harness.ParseVariant(*dto.Variant)
		if err != nil {
			return harness.Options{}, invalid(path, err)
		}
		opts.Variant = v
	}
	if err := opts.Validate(); err != nil {
		return harness.Options{}, invalid(path, err)
	}
	return opts, nil
}

func invalid(path string, err error) error {
	return &OpError{
		Op:   "config.map",
		Kind: KindInvalidConfig,
		Path: path,
		Err:  err,
	}
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

// YAMLConfig is the on-disk shape of a report configuration.
// Absent fields keep their defaults; an explicitly empty inputs list
// is kept and rejected by validation.
type YAMLConfig struct {
	Inputs      *[]int  `yaml:"inputs"`
	Threshold   *int    `yaml:"threshold"`
	Placeholder *string `yaml:"placeholder"`
	Variant     *string `yaml:"variant"`
	MaxDepth    *int    `yaml:"max_depth"`
}

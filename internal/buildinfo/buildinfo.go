// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package buildinfo

import "fmt"

// Set with -ldflags "-X code.hybscloud.com/fix/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("fixdemo %s (commit=%s, date=%s)", Version, Commit, Date)
}

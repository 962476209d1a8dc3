// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command fixdemo prints factorials computed by a fixed-point combinator.
package main

import "code.hybscloud.com/fix/internal/cli"

func main() {
	cli.Execute()
}

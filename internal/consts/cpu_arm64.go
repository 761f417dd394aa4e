package consts

import "golang.org/x/sys/cpu"

var HasWideIssue = cpu.ARM64.HasASIMD

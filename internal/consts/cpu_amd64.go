package consts

import (
	"golang.org/x/sys/cpu"
)

// proxy for a core that can keep eight rounds in flight
var HasWideIssue = cpu.X86.HasAVX2 && cpu.X86.HasBMI2

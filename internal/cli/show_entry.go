package ortbench

import (
	"fmt"
	"io"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/mwiater/ortbench/internal/appconfig"
	"github.com/mwiater/ortbench/internal/sysinfo"
)

func runShowConfig(out io.Writer) {
	cfg := GetConfig()
	if cfg == nil {
		fallback := appconfig.Config{
			ModelPath:  appconfig.DefaultModelPath,
			Iterations: appconfig.DefaultIterations,
			Warmup:     appconfig.DefaultWarmup,
		}
		appconfig.ShowConfig(out, "", fallback)
		return
	}
	appconfig.ShowConfig(out, cfg.ConfigPath, *cfg)
	if cfg.Debug {
		pp.Fprintln(out, cfg)
	}
}

func runShowHost(out io.Writer) {
	info := sysinfo.Detect()
	features := "none"
	if len(info.Features) > 0 {
		features = strings.Join(info.Features, ", ")
	}
	fmt.Fprintf(out, "CPU:            %s\n", info.Brand)
	fmt.Fprintf(out, "Vendor:         %s\n", info.Vendor)
	fmt.Fprintf(out, "Physical cores: %d\n", info.PhysicalCores)
	fmt.Fprintf(out, "Logical cores:  %d\n", info.LogicalCores)
	fmt.Fprintf(out, "Usable CPUs:    %d\n", info.UsableCPUs)
	fmt.Fprintf(out, "Platform:       %s/%s\n", info.GOOS, info.GOARCH)
	fmt.Fprintf(out, "Vector ISA:     %s\n", features)
	if DebugEnabled() {
		pp.Fprintln(out, info)
	}
}

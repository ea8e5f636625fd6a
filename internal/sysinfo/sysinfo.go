// internal/sysinfo/sysinfo.go
// Package sysinfo reports the host CPU the benchmark runs on.
package sysinfo

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// Info summarizes the CPU topology and the vector extensions inference
// kernels typically dispatch on.
type Info struct {
	Brand         string   `json:"brand"`
	Vendor        string   `json:"vendor"`
	PhysicalCores int      `json:"physical_cores"`
	LogicalCores  int      `json:"logical_cores"`
	UsableCPUs    int      `json:"usable_cpus"`
	Features      []string `json:"features"`
	GOOS          string   `json:"goos"`
	GOARCH        string   `json:"goarch"`
}

var vectorFeatures = []struct {
	name string
	id   cpuid.FeatureID
}{
	{"SSE4.2", cpuid.SSE42},
	{"AVX", cpuid.AVX},
	{"AVX2", cpuid.AVX2},
	{"FMA3", cpuid.FMA3},
	{"AVX512F", cpuid.AVX512F},
	{"AVX512VNNI", cpuid.AVX512VNNI},
	{"ASIMD", cpuid.ASIMD},
}

// Detect inspects the running host.
func Detect() Info {
	info := Info{
		Brand:         strings.TrimSpace(cpuid.CPU.BrandName),
		Vendor:        cpuid.CPU.VendorString,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		UsableCPUs:    runtime.NumCPU(),
		GOOS:          runtime.GOOS,
		GOARCH:        runtime.GOARCH,
	}
	if info.Brand == "" {
		info.Brand = "unknown"
	}
	for _, f := range vectorFeatures {
		if cpuid.CPU.Supports(f.id) {
			info.Features = append(info.Features, f.name)
		}
	}
	return info
}

// HardwareConcurrency returns the number of CPUs the process may run on.
func HardwareConcurrency() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	if cpuid.CPU.LogicalCores > 0 {
		return cpuid.CPU.LogicalCores
	}
	return 1
}

// String renders a one-line description for report headers.
func (i Info) String() string {
	features := "none"
	if len(i.Features) > 0 {
		features = strings.Join(i.Features, " ")
	}
	return fmt.Sprintf("%s (%d physical / %d logical cores, %d usable) %s/%s [%s]",
		i.Brand, i.PhysicalCores, i.LogicalCores, i.UsableCPUs, i.GOOS, i.GOARCH, features)
}

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Arthur Paulino"

var bgen = bavard.NewBatchGenerator(copyrightHolder, 2024, "binius")

type maskEntry struct {
	Value   string
	Comment string
}

type templateData struct {
	EvenMasks []maskEntry
	OddMasks  []string
	Alphas    []maskEntry
}

//go:generate go run main.go
func main() {
	const outDir = "../../field"

	var d templateData
	for k := 0; k < 6; k++ {
		blockLen := 1 << k

		var even uint64
		for pos := 0; pos < 64; pos += 2 * blockLen {
			even |= (1<<blockLen - 1) << pos
		}
		odd := even << blockLen

		// α_0 is the multiplicative identity; α_k = X_k for k ≥ 1, encoded 1 << 2^(k-1).
		alpha := uint64(1)
		if k > 0 {
			alpha = 1 << (1 << (k - 1))
		}
		var lanes uint64
		for pos := 0; pos < 64; pos += 2 * blockLen {
			lanes |= alpha << pos
		}

		d.EvenMasks = append(d.EvenMasks, maskEntry{
			Value:   fmt.Sprintf("0x%016x", even),
			Comment: fmt.Sprintf("// k=%d, %d-bit blocks", k, blockLen),
		})
		d.OddMasks = append(d.OddMasks, fmt.Sprintf("0x%016x", odd))
		d.Alphas = append(d.Alphas, maskEntry{
			Value:   fmt.Sprintf("0x%016x", lanes),
			Comment: fmt.Sprintf("// α_%d = %#x", k, alpha),
		})
	}

	entries := []bavard.Entry{
		{File: filepath.Join(outDir, "bitconstants.go"), Templates: []string{"bitconstants.go.tmpl"}},
	}
	if err := bgen.Generate(d, "field", "./templates/", entries...); err != nil {
		panic(err)
	}

	runCmd("gofmt", "-w", outDir)
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic(err)
	}
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ik5/audiodiff"
)

func main() {
	resample := flag.Bool("resample", false, "resample the second file to the first file's rate when rates differ")
	mono := flag.Bool("mono", false, "mix both files down to mono before comparing")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Println("Usage: compare_audio <file1.wav> <file2.wav>")
		os.Exit(1)
	}

	opts := audiodiff.Options{
		MatchRate:     *resample,
		MixdownToMono: *mono,
	}

	cmp, err := audiodiff.CompareFiles(flag.Arg(0), flag.Arg(1), opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "compare_audio:", err)
		os.Exit(1)
	}

	// Mismatched formats end the run successfully, without statistics.
	if cmp.Mismatch != nil {
		fmt.Println("WARNING: Files have different formats!")
		fmt.Printf("File 1: %s\n", cmp.Mismatch.A)
		fmt.Printf("File 2: %s\n", cmp.Mismatch.B)
		return
	}

	if err := cmp.Report.Render(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "compare_audio:", err)
		os.Exit(1)
	}
}

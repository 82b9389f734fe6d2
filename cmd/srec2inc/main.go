// Command srec2inc converts a Motorola S-record ROM image for the
// Freescale DSP563xx into a C include file of PPP boot packets. The input
// should be generated with `srec -S -R -A3 xxx.cld` so that S0 records
// carry the memory space and S2 records use 24-bit addressing.
//
// Usage:
//
//	srec2inc -n 18 -i input.srec -o output.inc
package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/sg-/srec2inc/internal/ppp"
	"github.com/sg-/srec2inc/internal/srec"
)

var (
	packetSize = flag.Int("n", ppp.DefaultPacketSize, "packet size in bytes, a multiple of 3, minimum 9")
	input      = flag.String("i", "", "input srec file (required)")
	output     = flag.String("o", "default.inc", "output include file")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("srec2inc: ")
	flag.Parse()

	size := ppp.NormalizePacketSize(*packetSize)
	if size != *packetSize {
		log.Printf("invalid packet size %d, using default of %d", *packetSize, size)
	}
	if *input == "" {
		flag.Usage()
		os.Exit(1)
	}

	in, err := os.Open(*input)
	if err != nil {
		log.Fatalf("opening input: %v", err)
	}
	defer in.Close()

	// Created only once the input is known to be readable, so a bad
	// invocation leaves no stray output file behind.
	out, err := os.Create(*output)
	if err != nil {
		log.Fatalf("creating output: %v", err)
	}

	w := bufio.NewWriter(out)
	if err := ppp.WritePrologue(w); err != nil {
		log.Fatalf("writing %s: %v", *output, err)
	}
	if err := ppp.NewTranscoder(w, size).Run(srec.NewReader(in)); err != nil {
		log.Fatalf("transcoding %s: %v", *input, err)
	}
	if err := w.Flush(); err != nil {
		log.Fatalf("writing %s: %v", *output, err)
	}
	if err := out.Close(); err != nil {
		log.Fatalf("closing %s: %v", *output, err)
	}
}

package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/unkn0wn-root/seedhash"
	"github.com/unkn0wn-root/seedhash/boundedmap"
)

func main() {
	var (
		seed    = flag.String("seed", "", "fixed 32-bit seed (decimal or 0x hex); empty uses the process seed")
		buckets = flag.Bool("buckets", false, "print the bounded map bucket of each input")
		asMap   = flag.Bool("map", false, "load inputs into a bounded map and print its CBOR encoding as hex")
		stdin   = flag.Bool("stdin", false, "read newline separated inputs from stdin")
	)
	flag.Parse()

	inputs := flag.Args()
	if *stdin {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			inputs = append(inputs, sc.Text())
		}
		if err := sc.Err(); err != nil {
			log.Fatalf("read stdin: %v", err)
		}
	}
	if len(inputs) == 0 {
		log.Printf("[warn] no inputs; pass strings as arguments or use -stdin")
		os.Exit(2)
	}

	hash := seedhash.SecureHashString
	if *seed != "" {
		s, err := parseSeed(*seed)
		if err != nil {
			log.Fatalf("bad -seed: %v", err)
		}
		hash = func(in string) int32 { return seedhash.SeededHashString(s, in) }
	} else {
		log.Printf("[info] process seed %08x", uint32(seedhash.Seed()))
	}

	for _, in := range inputs {
		h := hash(in)
		if *buckets {
			fmt.Printf("%08x\t%3d\t%q\n", uint32(h), boundedmap.BucketIndex(in), in)
			continue
		}
		fmt.Printf("%08x\t%q\n", uint32(h), in)
	}

	if !*asMap {
		return
	}

	m := boundedmap.New[string, int32]()
	for _, in := range inputs {
		if _, _, err := m.Put(in, hash(in)); err != nil {
			log.Printf("[warn] %v; encoding the first %d entries", err, m.Size())
			break
		}
	}
	data, err := m.MarshalCBOR()
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	fmt.Println(hex.EncodeToString(data))
}

// parseSeed accepts any value that fits in 32 bits, signed or unsigned.
func parseSeed(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxUint32 {
		return 0, fmt.Errorf("%s does not fit in 32 bits", s)
	}
	return int32(uint32(v)), nil
}

package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/d3d9/dino2"
)

var out = flag.String("out", "dino2_package_profile.pb.gz", "file path to output the profile to")

func main() {
	if err := run(); err != nil {
		fmt.Println("failed:", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()
	dirs := flag.Args()

	fmt.Println("starting profile")
	var profile bytes.Buffer
	pprof.StartCPUProfile(&profile)
	for i, dir := range dirs {
		fmt.Printf("parsing dataset %d/%d\n", i+1, len(dirs))
		ds, err := dino2.ParseDataset(os.DirFS(dir), dino2.ParseOptions{})
		if err != nil {
			return err
		}
		resolver := dino2.NewResolver(ds)
		for i := range ds.Trips {
			if _, err := resolver.TripDates(&ds.Trips[i]); err != nil {
				return err
			}
		}
	}
	pprof.StopCPUProfile()

	fmt.Println("writing profile to", *out)
	return os.WriteFile(*out, profile.Bytes(), 0644)
}

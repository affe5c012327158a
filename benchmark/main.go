package main

import (
	"flag"
	"fmt"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/xgzlucario/strtab"
)

var previousPause time.Duration

func gcPause() time.Duration {
	runtime.GC()
	var stats debug.GCStats
	debug.ReadGCStats(&stats)
	pause := stats.PauseTotal - previousPause
	previousPause = stats.PauseTotal
	return pause
}

func genKey(i int) string {
	return fmt.Sprintf("%08x", i)
}

func main() {
	c := ""
	entries := 0
	flag.StringVar(&c, "store", "strtab", "store to bench.")
	flag.IntVar(&entries, "entries", 1000*10000, "number of strings to test.")
	flag.Parse()

	fmt.Println(c)
	fmt.Println("entries:", entries)

	start := time.Now()
	switch c {
	case "strtab":
		b := strtab.WithCapacity[uint32, uint32, strtab.Compact](entries, entries*8)
		for i := 0; i < entries; i++ {
			if _, err := b.Push(genKey(i)); err != nil {
				panic(err)
			}
		}
		t := b.Build()
		runtime.KeepAlive(t)

	case "strtab/padded":
		b := strtab.WithCapacity[uint32, uint32, strtab.NulPadded](entries, entries*9)
		for i := 0; i < entries; i++ {
			if _, err := b.Push(genKey(i)); err != nil {
				panic(err)
			}
		}
		t := b.Build()
		runtime.KeepAlive(t)

	case "interner":
		in := strtab.NewInterner[uint32, uint32, strtab.Compact](strtab.Options{
			ExpectedStrings: entries,
			ExpectedBytes:   entries * 8,
		})
		for i := 0; i < entries; i++ {
			if _, err := in.Intern(genKey(i)); err != nil {
				panic(err)
			}
		}
		t := in.Build()
		runtime.KeepAlive(t)

	case "slice":
		s := make([]string, 0, entries)
		for i := 0; i < entries; i++ {
			s = append(s, genKey(i))
		}
		runtime.KeepAlive(s)
	}
	cost := time.Since(start)

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	fmt.Println("time cost:", cost)
	fmt.Println("heap alloc:", humanize.IBytes(mem.HeapAlloc))
	fmt.Println("heap objects:", humanize.Comma(int64(mem.HeapObjects)))
	fmt.Println("gc pause:", gcPause())
}

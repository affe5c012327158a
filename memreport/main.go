// Command memreport builds a table from a dataset of newline-separated
// strings and reports how much memory it costs compared to holding the
// same data as a []string.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"runtime"
	"unsafe"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/tidwall/mmap"
	"github.com/xgzlucario/strtab"
	"golang.org/x/sys/unix"
)

const defaultConfigFileName = "memreport.toml"

func initConfig(fileName string) error {
	viper.SetDefault("dataset.entries", 100*10000)
	viper.SetDefault("dataset.path", "")
	viper.SetDefault("table.padded", false)
	viper.SetConfigFile(fileName)
	if err := viper.ReadInConfig(); err != nil {
		// Defaults are enough when no config file is present.
		if _, ok := err.(*os.PathError); ok {
			return nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}
	return nil
}

// loadDataset returns the strings to measure: the mmapped lines of the
// configured file, or generated keys when no path is set.
func loadDataset() ([][]byte, error) {
	path := viper.GetString("dataset.path")
	if path == "" {
		entries := viper.GetInt("dataset.entries")
		lines := make([][]byte, 0, entries)
		for i := 0; i < entries; i++ {
			lines = append(lines, fmt.Appendf(nil, "%08x", i))
		}
		return lines, nil
	}
	data, err := mmap.Open(path, false)
	if err != nil {
		return nil, err
	}
	lines := bytes.Split(data, []byte{'\n'})
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	return lines, nil
}

func buildTable[L strtab.Layout](lines [][]byte) (*strtab.Table[uint32, uint32, L], error) {
	b := strtab.New[uint32, uint32, L]()
	for _, line := range lines {
		if _, err := b.Push(string(line)); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

func heapAlloc() uint64 {
	runtime.GC()
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return mem.HeapAlloc
}

func maxRSS() int64 {
	var usage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &usage); err != nil {
		return 0
	}
	// ru_maxrss is in KiB on Linux.
	return usage.Maxrss * 1024
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	configFile := ""
	flag.StringVar(&configFile, "config", defaultConfigFileName, "config file path.")
	flag.Parse()

	if err := initConfig(configFile); err != nil {
		logger.Fatal().Err(err).Msg("read config")
	}

	lines, err := loadDataset()
	if err != nil {
		logger.Fatal().Err(err).Msg("load dataset")
	}

	distinct := mapset.NewThreadUnsafeSet[string]()
	totalBytes := 0
	for _, line := range lines {
		distinct.Add(string(line))
		totalBytes += len(line)
	}
	logger.Info().
		Int("strings", len(lines)).
		Int("distinct", distinct.Cardinality()).
		Str("data", humanize.IBytes(uint64(totalBytes))).
		Msg("dataset loaded")

	before := heapAlloc()
	var tableOverhead int
	if viper.GetBool("table.padded") {
		t, err := buildTable[strtab.NulPadded](lines)
		if err != nil {
			logger.Fatal().Err(err).Msg("build table")
		}
		tableOverhead = len(t.Offsets()) * int(unsafe.Sizeof(t.Offsets()[0]))
		defer runtime.KeepAlive(t)
	} else {
		t, err := buildTable[strtab.Compact](lines)
		if err != nil {
			logger.Fatal().Err(err).Msg("build table")
		}
		tableOverhead = len(t.Offsets()) * int(unsafe.Sizeof(t.Offsets()[0]))
		defer runtime.KeepAlive(t)
	}
	after := heapAlloc()

	var header string
	sliceOverhead := len(lines) * int(unsafe.Sizeof(header))

	logger.Info().
		Str("heap_delta", humanize.IBytes(after-before)).
		Str("table_overhead", humanize.IBytes(uint64(tableOverhead))).
		Str("slice_overhead", humanize.IBytes(uint64(sliceOverhead))).
		Str("max_rss", humanize.IBytes(uint64(maxRSS()))).
		Msg("table built")
}

package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/aretw0/unmangle"
)

func main() {
	count := flag.Int("count", 10000, "Number of notes to generate")
	size := flag.Int("size", 200, "Escaped characters per note body")
	flag.Parse()

	fmt.Printf("Generating export with %d notes...\n", *count)
	startGen := time.Now()
	input := generate(*count, *size)
	fmt.Printf("Generation took: %v (%d bytes)\n", time.Since(startGen), len(input))

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := context.Background()

	results := make(map[int]time.Duration)
	levels := []int{1, 2, 4, runtime.NumCPU()}
	for _, jobs := range levels {
		fmt.Printf("Rendering with %d jobs...\n", jobs)
		start := time.Now()
		err := unmangle.Render(ctx, bytes.NewReader(input), io.Discard,
			unmangle.WithLogger(logger),
			unmangle.WithConcurrency(jobs),
		)
		if err != nil {
			panic(err)
		}
		results[jobs] = time.Since(start)
	}

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d notes):\n", *count)
	for _, jobs := range levels {
		fmt.Printf("  jobs=%-3d %v\n", jobs, results[jobs])
	}
	fmt.Printf("--------------------------------------------------\n")
}

// generate builds a notes_v2 export whose bodies are escaped the way the
// exporter writes them: every UTF-8 byte as its own \u00XX escape.
func generate(count, size int) []byte {
	body := strings.Repeat(`caf\u00c3\u00a9 `, size/10+1)
	var buf bytes.Buffer
	buf.WriteString(`{"notes_v2": [`)
	for i := 0; i < count; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"title": "Bench note %d", "text": "%s", "created_timestamp": %d, "updated_timestamp": %d, "tags": [{"name": "bench"}]}`,
			i, body, time.Now().Unix(), time.Now().Unix())
	}
	buf.WriteString(`]}`)
	return buf.Bytes()
}

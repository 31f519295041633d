package unmangle_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aretw0/unmangle"
)

// Example_render prints the text listing of a small export.
func Example_render() {
	input := `{"notes_v2": [{
		"title": "Hi",
		"text": "first line\nsecond line",
		"created_timestamp": 0,
		"updated_timestamp": 86400,
		"tags": [{"name": "greeting"}]
	}]}`

	if err := unmangle.Render(context.Background(), strings.NewReader(input), os.Stdout); err != nil {
		log.Fatal(err)
	}
	// Output:
	// [1970-01-01 00:00:00 UTC]-[1970-01-02 00:00:00 UTC]
	// Hi
	//
	// first line
	// second line
}

// Example_decode decodes a single escaped fragment.
func Example_decode() {
	s, err := unmangle.Decode(`"\u00c2\u00a9 2024"`)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(s)
	// Output: © 2024
}

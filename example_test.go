package compresspickle_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	cp "github.com/ML-and-AI-repo/compress-pickle"
)

func Example_roundTrip() {
	// Compress to bytes; the scheme is explicit because there is no
	// filename to infer from.
	blob, err := cp.Marshal("hello, compressed world", cp.SchemeGzip)
	if err != nil {
		log.Fatal(err)
	}

	var got string
	if err := cp.Unmarshal(blob, &got, cp.SchemeGzip); err != nil {
		log.Fatal(err)
	}

	fmt.Println(got)
	// Output: hello, compressed world
}

func Example_saveToFile() {
	dir, err := os.MkdirTemp("", "compresspickle")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	type checkpoint struct {
		Step int
		Loss float64
	}

	// The .zst extension selects zstd compression.
	path := filepath.Join(dir, "ckpt.zst")
	if err := cp.Save(checkpoint{Step: 1200, Loss: 0.042}, path); err != nil {
		log.Fatal(err)
	}

	var got checkpoint
	if err := cp.Load(path, &got); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("step=%d loss=%.3f\n", got.Step, got.Loss)
	// Output: step=1200 loss=0.042
}

func ExampleDetectScheme() {
	blob, err := cp.Marshal([]int{1, 2, 3}, cp.SchemeZstd)
	if err != nil {
		log.Fatal(err)
	}

	scheme, ok := cp.DetectScheme(blob)
	fmt.Println(scheme, ok)
	// Output: zstd true
}

func ExampleWithExtensionPolicy() {
	dir, err := os.MkdirTemp("", "compresspickle")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	// ".dat" is no known compression extension; PolicyIgnore stores
	// the payload uncompressed instead of failing.
	path := filepath.Join(dir, "blob.dat")
	if err := cp.Save("plain payload", path, cp.WithExtensionPolicy(cp.PolicyIgnore)); err != nil {
		log.Fatal(err)
	}

	var got string
	if err := cp.Load(path, &got, cp.WithExtensionPolicy(cp.PolicyIgnore)); err != nil {
		log.Fatal(err)
	}

	fmt.Println(got)
	// Output: plain payload
}

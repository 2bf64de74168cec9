package main

import (
	"fmt"
	"log/slog"

	"github.com/eHammarstrom/cevtib"
)

func main() {
	v := cevtib.New[uint64](
		cevtib.WithLogger(cevtib.NewTextLogger(slog.LevelDebug)),
	)
	defer v.Close()

	fmt.Println("--- Push ---")
	for i := 0; i < 139; i++ {
		v.Push(i%2 == 0)
	}

	fmt.Println("Len:", v.Len())
	fmt.Println("Cap:", v.Cap())
	fmt.Println("Bits:", v)

	fmt.Println("--- Pop ---")
	for i := 0; i < 100; i++ {
		v.Pop()
	}

	v.ShrinkBlocksBy(2)

	fmt.Println("Len:", v.Len())
	fmt.Println("Cap:", v.Cap())
	fmt.Println("Bits:", v)
	fmt.Printf("Stats: %+v\n", v.Stats())
}

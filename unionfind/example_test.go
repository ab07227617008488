package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// ExampleUnionFind demonstrates merging components and querying connectivity.
//
//	0─1─2   3   4─5
func ExampleUnionFind() {
	uf, _ := unionfind.New(6)
	_, _ = uf.Union(0, 1)
	_, _ = uf.Union(1, 2)
	_, _ = uf.Union(4, 5)

	a, _ := uf.Connected(0, 2)
	b, _ := uf.Connected(2, 3)
	size, _ := uf.Size(2)
	fmt.Println("0~2:", a)
	fmt.Println("2~3:", b)
	fmt.Println("components:", uf.Count())
	fmt.Println("size of {0,1,2}:", size)

	// Output:
	// 0~2: true
	// 2~3: false
	// components: 3
	// size of {0,1,2}: 3
}

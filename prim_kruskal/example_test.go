package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/dprim/matrix"
	"github.com/katalvlaran/dprim/prim_kruskal"
)

// ExampleKruskal demonstrates Kruskal’s algorithm on a 4-vertex "letter envelope":
//
//	0—1 (4), 1—2 (2), 2—3 (5), 3—0 (4), 0—2 (1), 1—3 (3).
//
// The MST has 3 edges: {0–2, 2–1, 1–3} with total weight = 6.
func ExampleKruskal() {
	g, _ := matrix.NewSquare([][]int64{
		{0, 4, 1, 4},
		{4, 0, 2, 3},
		{1, 2, 0, 5},
		{4, 3, 5, 0},
	})

	edges, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges: ", total)
	for i, e := range edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%d-%d", e.From, e.To)
	}
	// Output: Total: 6, Edges: 0-2 1-2 1-3
}

// ExamplePrim demonstrates Prim’s algorithm on a pentagon:
// 0–1 (1), 1–2 (2), 2–3 (3), 3–4 (5), 0–4 (12).
func ExamplePrim() {
	g, _ := matrix.NewSquare([][]int64{
		{0, 1, 0, 0, 12},
		{1, 0, 2, 0, 0},
		{0, 2, 0, 3, 0},
		{0, 0, 3, 0, 5},
		{12, 0, 0, 5, 0},
	})

	edges, total, err := prim_kruskal.Prim(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges: ", total)
	for i, e := range edges {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%d-%d", e.From, e.To)
	}
	// Output: Total: 11, Edges: 0-1 1-2 2-3 3-4
}

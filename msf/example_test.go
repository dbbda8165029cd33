package msf_test

import (
	"fmt"

	"github.com/katalvlaran/horde/device"
	"github.com/katalvlaran/horde/edgegraph"
	"github.com/katalvlaran/horde/msf"
)

// ExampleRun computes the minimum spanning tree of a 5-vertex cycle with
// distinct weights; the heaviest cycle edge (weight 5) is the one left out.
func ExampleRun() {
	// 1. Build the weighted cycle 0—1—2—3—4—0.
	g, _ := edgegraph.New(5)
	for i, w := range []float64{1, 2, 3, 4, 5} {
		g.AddEdge(int32(i), int32((i+1)%5), w)
	}

	// 2. Run the parallel computation on a fresh device context.
	ctx := device.New()
	defer ctx.Close()

	var total float64
	if _, err := msf.Run(g, &total, ctx); err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. The forest weight is the cycle minus its heaviest edge.
	fmt.Printf("forest weight: %g\n", total)
	// Output: forest weight: 10
}

// ExampleSequential verifies a result against the union-find oracle.
func ExampleSequential() {
	g, _ := edgegraph.New(3)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 2)
	g.AddEdge(0, 2, 4)

	total, edges, _ := msf.Sequential(g)
	fmt.Printf("weight %g over %d edges\n", total, edges)
	// Output: weight 3 over 2 edges
}

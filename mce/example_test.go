package mce_test

import (
	"fmt"

	"github.com/katalvlaran/colomine/core"
	"github.com/katalvlaran/colomine/mce"
)

// ExampleEnumerate mines the spec's four-instance scene: a triangle of
// two pharmacies and a bus stop, plus a kiosk adjacent to one pharmacy
// and the bus stop.
func ExampleEnumerate() {
	arena := core.NewArena(4)
	a, _ := arena.Add("pharmacy", 0, 0)
	b, _ := arena.Add("bus_stop", 1, 0)
	c, _ := arena.Add("pharmacy", 0, 1)
	d, _ := arena.Add("kiosk", 1, 1)

	sets := []core.NeighborSet{
		{Center: a, Neighbors: []core.InstanceID{b, c, d}},
		{Center: b, Neighbors: []core.InstanceID{c, d}},
	}

	res, err := mce.Enumerate(arena, sets)
	if err != nil {
		panic(err)
	}

	for _, sig := range res.Signatures() {
		entry, _ := res.Entry(sig)
		members := 0
		for _, set := range entry.Members {
			members += len(set)
		}
		fmt.Printf("%s: %d participating instances\n", sig, members)
	}

	// Output:
	// {bus_stop, kiosk, pharmacy}: 3 participating instances
	// {bus_stop, pharmacy, pharmacy}: 3 participating instances
}

// Command searchpath reads mission, search-grid, and boundary files and
// writes a coverage path over the search grid, routed around the boundary
// from the last mission point.
//
// Usage: searchpath [naive|decomp]
// Pass "naive" to skip decomposition and sweep the whole search grid along
// a single east-west axis. Pass "decomp" or nothing to decompose the
// search grid into convex subregions first.
package main

import (
	"fmt"
	"os"

	"github.com/hlin91/cppauvsi-searchpath/mission"
)

const (
	missionFile = "MissionPointsParsed.txt"
	searchFile  = "SearchGridParsed.txt"
	boundsFile  = "BoundaryPoints.txt"
	outFile     = "MissionPointsWithSearch.txt"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) > 1 {
		fmt.Println("Error: too many arguments passed")
		return 1
	}
	var arg string
	if len(args) == 1 {
		arg = args[0]
	}
	mode, err := mission.ParseMode(arg)
	if err != nil {
		fmt.Println("Error:", err)
		fmt.Println("Available options: naive, decomp")
		return 1
	}

	missionIn, err := os.Open(missionFile)
	if err != nil {
		fmt.Println("Could not open mission file.")
		return 1
	}
	defer missionIn.Close()

	searchIn, err := os.Open(searchFile)
	if err != nil {
		fmt.Println("Could not open search grid file.")
		return 1
	}
	defer searchIn.Close()

	boundsIn, err := os.Open(boundsFile)
	if err != nil {
		fmt.Println("Could not open boundary points file.")
		return 1
	}
	defer boundsIn.Close()

	out, err := os.Create(outFile)
	if err != nil {
		fmt.Println("Could not create output file.")
		return 1
	}
	defer out.Close()

	if err := mission.Plan(missionIn, searchIn, boundsIn, out, mode, mission.DefaultConfig()); err != nil {
		fmt.Println("Error:", err)
		return 1
	}
	return 0
}

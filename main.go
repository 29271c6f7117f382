package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrtajniak/AvidDNxRecommender/catalog"
	"github.com/mrtajniak/AvidDNxRecommender/matcher"
	"github.com/mrtajniak/AvidDNxRecommender/tui"
)

func main() {
	// Define flags
	frameRate := flag.String("framerate", "", "Frame rate, e.g. 25, 23.976 or 24000/1001")
	resolution := flag.String("resolution", "", "Resolution, e.g. 1920x1080 or 1080p")
	chroma := flag.String("chroma", "4:2:2", "Chroma subsampling: 4:2:2, 4:4:4 (4:2:0 is matched as 4:2:2)")
	depth := flag.String("depth", "8-bit", "Bit depth: 8-bit, 10-bit, 12-bit")
	preference := flag.String("preference", "skip", "Trade-off preference: space, balanced, quality, skip")
	listProfiles := flag.Bool("list-profiles", false, "List the profile catalog and exit")

	// Custom usage
	flag.Usage = func() {
		fmt.Println("Usage: dnx-recommender [options]")
		fmt.Println()
		fmt.Println("Recommends Avid DNxHD/DNxHR encoding profiles for a set of media parameters.")
		fmt.Println("Run without flags for the interactive wizard.")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  dnx-recommender                                             # interactive wizard")
		fmt.Println("  dnx-recommender -framerate=23.976 -resolution=1080p         # direct query")
		fmt.Println("  dnx-recommender -framerate=25 -resolution=3840x2160 \\")
		fmt.Println("      -chroma=4:2:2 -depth=10-bit -preference=quality")
		fmt.Println("  dnx-recommender -list-profiles                              # show the catalog")
	}

	flag.Parse()

	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid profile catalog: %v\n", err)
		os.Exit(1)
	}

	// Handle -list-profiles
	if *listProfiles {
		fmt.Println(renderCatalogTable(cat))
		os.Exit(0)
	}

	// With a frame rate and resolution given, answer directly;
	// otherwise run the wizard.
	if *frameRate != "" && *resolution != "" {
		query := matcher.Query{
			FrameRate:  matcher.NormalizeFrameRate(*frameRate),
			Resolution: matcher.NormalizeResolution(*resolution),
			Chroma:     matcher.NormalizeChroma(*chroma),
			BitDepth:   *depth,
			Preference: matcher.NormalizePreference(*preference),
		}
		runQuery(cat, query)
		return
	}

	if *frameRate != "" || *resolution != "" {
		fmt.Fprintln(os.Stderr, "Error: -framerate and -resolution must be given together")
		os.Exit(1)
	}

	model := tui.NewModel(cat)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runQuery prints match results for a non-interactive invocation. An
// empty result is a normal outcome and exits 0.
func runQuery(cat catalog.Catalog, query matcher.Query) {
	fmt.Printf("Query: %s\n\n", matcher.DescribeQuery(query))

	matches := matcher.MatchPass(cat, query, false)
	relaxed := false
	if len(matches) == 0 {
		matches = matcher.MatchPass(cat, query, true)
		relaxed = true
	}

	if len(matches) == 0 {
		fmt.Println("No matching profile found.")
		return
	}

	if relaxed {
		fmt.Println("No exact match; close matches using broadcast defaults (1080p / 4:2:2 / 8-bit / 30 fps):")
	}
	fmt.Println(renderProfileTable(matches))
}

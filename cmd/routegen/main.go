// Command routegen plans multi-depot routes from the command line, either for
// a seeded synthetic instance or for a JSON scenario file, and prints them.
package main

import (
	"depot-route-service/internal/domain"
	"depot-route-service/internal/services"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

type scenario struct {
	Depots       []domain.Point `json:"depots"`
	Destinations []domain.Point `json:"destinations"`
}

func main() {
	depotCount := flag.Int("depots", 3, "Number of depots (trucks)")
	destinationCount := flag.Int("destinations", 30, "Number of destinations (customers)")
	seed := flag.Int64("seed", 10, "Random seed for synthetic locations")
	input := flag.String("input", "", "Scenario JSON file with depots and destinations; overrides generation")
	format := flag.String("format", "json", "Output format: json or table")
	flag.Parse()

	depots, destinations, err := loadInput(*input, *depotCount, *destinationCount, *seed)
	if err != nil {
		log.Fatal(err)
	}

	sol, err := services.Solve(depots, destinations)
	if err != nil {
		log.Fatal(err)
	}

	switch *format {
	case "json":
		err = writeJSON(os.Stdout, depots, destinations, sol)
	case "table":
		err = writeTable(os.Stdout, sol)
	default:
		err = fmt.Errorf("unknown format %q", *format)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func loadInput(path string, depotCount, destinationCount int, seed int64) ([]domain.Point, []domain.Point, error) {
	if path == "" {
		return services.GenerateLocations(depotCount, destinationCount, seed)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read scenario %q: %w", path, err)
	}

	var sc scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, nil, fmt.Errorf("parse scenario %q: %w", path, err)
	}

	return sc.Depots, sc.Destinations, nil
}

func writeJSON(w io.Writer, depots, destinations []domain.Point, sol *domain.Solution) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Depots       []domain.Point   `json:"depots"`
		Destinations []domain.Point   `json:"destinations"`
		Solution     *domain.Solution `json:"solution"`
		TotalLength  float64          `json:"total_length"`
	}{depots, destinations, sol, sol.TotalLength()})
}

// writeTable prints one block per depot; steps are numbered from 1 and the
// return leg is shown without a number.
func writeTable(w io.Writer, sol *domain.Solution) error {
	for _, r := range sol.Routes {
		if _, err := fmt.Fprintf(w, "Depot %d at (%.2f, %.2f): %d stops, length %.2f\n",
			r.DepotID+1, r.Depot.X, r.Depot.Y, len(r.Visits), r.Length()); err != nil {
			return err
		}
		for _, s := range r.Steps() {
			if _, err := fmt.Fprintf(w, "  %3d. destination %-4d (%.2f, %.2f)\n",
				s.Number, s.Destination, s.Location.X, s.Location.Y); err != nil {
				return err
			}
		}
		if !r.IsEmpty() {
			if _, err := fmt.Fprintf(w, "       return   (%.2f, %.2f)\n", r.Depot.X, r.Depot.Y); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "Total length %.2f\n", sol.TotalLength())
	return err
}

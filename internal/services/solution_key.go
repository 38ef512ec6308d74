package services

import (
	"depot-route-service/internal/domain"
	"encoding/binary"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// SolutionKey fingerprints a routing input for the solution cache.
// Point order matters because it fixes depot IDs and tie-breaking.
func SolutionKey(depots, destinations []domain.Point) string {
	d := xxhash.New()
	var buf [8]byte

	writeUint := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	writePoints := func(pts []domain.Point) {
		writeUint(uint64(len(pts)))
		for _, p := range pts {
			writeUint(math.Float64bits(p.X))
			writeUint(math.Float64bits(p.Y))
		}
	}

	writePoints(depots)
	writePoints(destinations)

	return strconv.FormatUint(d.Sum64(), 16)
}

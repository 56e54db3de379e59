package decompose

import "github.com/hlin91/cppauvsi-searchpath/geo"

// Merge combines two polygons that share an edge into one, by dropping the
// shared edge and concatenating the remaining vertex chains: i is the index
// of the shared edge within p1 (running p1.Vertex(i) -> p1.Vertex(i+1)), j
// is its index within p2.
func Merge(p1, p2 geo.Polygon, i, j int) geo.Polygon {
	var result []geo.Point
	for z := 0; z < p1.Size(); z++ {
		result = append(result, p1.Vertex(i+1+z))
	}
	for z := 1; z < p2.Size()-1; z++ {
		result = append(result, p2.Vertex(j+1+z))
	}
	return geo.NewPolygon(result...)
}

// MergeSubregions repeatedly walks every ordered pair of subregions and
// merges the first pair found that (a) shares an edge and (b) whose union
// has zero concave vertices, replacing the pair with their merge. It stops
// once a full sweep finds no merge to perform. Applying it twice in a row
// is a no-op (the idempotence property spec.md §8 requires), since a
// second pass over an already-fully-merged set finds nothing left to merge.
func MergeSubregions(subregions []geo.Polygon) []geo.Polygon {
	list := append([]geo.Polygon(nil), subregions...)
	for {
		mergedAny := false
		for i := 0; i < len(list) && !mergedAny; i++ {
			for j := 0; j < len(list); j++ {
				if i == j {
					continue
				}
				ei, ej, ok := list[i].Adjacent(list[j])
				if !ok {
					continue
				}
				candidate := Merge(list[i], list[j], ei, ej)
				if len(candidate.ConcaveVertices()) != 0 {
					continue
				}
				list = replaceMerged(list, i, j, candidate)
				mergedAny = true
				break
			}
		}
		if !mergedAny {
			return list
		}
	}
}

// replaceMerged returns a new slice with list[i] replaced by merged and
// list[j] removed.
func replaceMerged(list []geo.Polygon, i, j int, merged geo.Polygon) []geo.Polygon {
	out := make([]geo.Polygon, 0, len(list)-1)
	for k, p := range list {
		switch {
		case k == i:
			out = append(out, merged)
		case k == j:
			// dropped
		default:
			out = append(out, p)
		}
	}
	return out
}

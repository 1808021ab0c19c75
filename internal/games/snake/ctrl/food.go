package ctrl

import "math/rand"

// maxFoodDraws bounds the rejection sampling before falling back to a scan
// of the free cells, so a nearly full board still spawns in bounded time.
const maxFoodDraws = 64

// generateFood picks a uniformly random cell not covered by the snake or by
// existing food. It returns false when every cell is occupied.
func generateFood(rng *rand.Rand, dimX, dimY uint16, snake, food []Point) (Point, bool) {
	occupied := make(map[Point]struct{}, len(snake)+len(food))
	for _, p := range snake {
		occupied[p] = struct{}{}
	}
	for _, p := range food {
		occupied[p] = struct{}{}
	}

	total := int(dimX) * int(dimY)
	if len(occupied) >= total {
		return Point{}, false
	}

	for range maxFoodDraws {
		p := Point{
			X: uint16(rng.Intn(int(dimX))),
			Y: uint16(rng.Intn(int(dimY))),
		}
		if _, taken := occupied[p]; !taken {
			return p, true
		}
	}

	free := make([]Point, 0, total-len(occupied))
	for y := range dimY {
		for x := range dimX {
			p := Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	return free[rng.Intn(len(free))], true
}

// clearEaten removes the first food point equal to eaten. Absent points are a no-op.
func clearEaten(food []Point, eaten Point) []Point {
	for i, p := range food {
		if p == eaten {
			return append(food[:i], food[i+1:]...)
		}
	}
	return food
}

func containsPoint(points []Point, p Point) bool {
	for _, q := range points {
		if q == p {
			return true
		}
	}
	return false
}

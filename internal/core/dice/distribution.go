package dice

// Unset is the face value of a die that has not been rolled yet.
const Unset = 0

// Distribution is a face histogram. Index i counts the dice showing face i;
// index 0 counts unset dice.
type Distribution [Faces + 1]int

// Distribute builds the histogram of the provided face values. Values outside
// 1..Faces are counted as unset.
func Distribute(values []int) Distribution {
	var dist Distribution
	for _, v := range values {
		if v < 1 || v > Faces {
			v = Unset
		}
		dist[v]++
	}
	return dist
}

// Count returns how many dice show face. Out-of-range faces count zero.
func (d Distribution) Count(face int) int {
	if face < 1 || face > Faces {
		return 0
	}
	return d[face]
}

// Rolled returns the number of dice with a face value.
func (d Distribution) Rolled() int {
	n := 0
	for face := 1; face <= Faces; face++ {
		n += d[face]
	}
	return n
}

// Weighted returns the face-weighted count total, which equals Sum of the
// dice that produced the distribution.
func (d Distribution) Weighted() int {
	total := 0
	for face := 1; face <= Faces; face++ {
		total += d[face] * face
	}
	return total
}

// Sum adds up the face values, ignoring unset dice.
func Sum(values []int) int {
	total := 0
	for _, v := range values {
		if v >= 1 && v <= Faces {
			total += v
		}
	}
	return total
}

package day19

import "github.com/aalvaropc/aoc2021/internal/aoc"

type vec = aoc.Pt3Int

// rotation maps axis i of the output to sign[i] * input[perm[i]].
type rotation struct {
	perm [3]int
	sign [3]int
}

func (r rotation) apply(v vec) vec {
	c := [3]int{v.X, v.Y, v.Z}
	return vec{
		X: r.sign[0] * c[r.perm[0]],
		Y: r.sign[1] * c[r.perm[1]],
		Z: r.sign[2] * c[r.perm[2]],
	}
}

// rotations lists the 24 proper rotations of the cube: every signed axis
// permutation whose determinant is +1.
var rotations = func() []rotation {
	perms := [][3]int{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}, {0, 2, 1}, {2, 1, 0}, {1, 0, 2}}
	var out []rotation
	for pi, p := range perms {
		parity := 1
		if pi >= 3 {
			parity = -1
		}
		for s := 0; s < 8; s++ {
			sign := [3]int{1, 1, 1}
			det := parity
			for i := 0; i < 3; i++ {
				if s&(1<<i) != 0 {
					sign[i] = -1
					det = -det
				}
			}
			if det == 1 {
				out = append(out, rotation{perm: p, sign: sign})
			}
		}
	}
	return out
}()

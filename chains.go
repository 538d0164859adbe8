/*
 * chains.go, part of molfeat.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package feat

import (
	"slices"
	"strconv"
	"strings"
)

//Chains returns every simple path of exactly depth atoms in the bond graph.
//A path and its reverse are the same chain, so each chain is reported once, in its
//canonical orientation (see canonicalPath). The result is sorted.
//depth 1 gives the atoms, 2 the bonds, 3 the angles and 4 the dihedrals.
func (B *BondGraph) Chains(depth int) [][]int {
	if depth < 1 {
		return nil
	}
	seen := make(map[string]bool)
	ret := make([][]int, 0, B.Len())
	var walk func(path []int)
	walk = func(path []int) {
		if len(path) == depth {
			p := canonicalPath(path)
			key := pathKey(p)
			if !seen[key] {
				seen[key] = true
				ret = append(ret, p)
			}
			return
		}
		for _, next := range B.adj[path[len(path)-1]] {
			if slices.Contains(path, next) {
				continue
			}
			walk(append(path, next))
		}
	}
	path := make([]int, 0, depth)
	for i := 0; i < B.Len(); i++ {
		walk(append(path, i))
	}
	slices.SortFunc(ret, slices.Compare[[]int])
	return ret
}

//canonicalPath returns a copy of path in the orientation that is lexicographically
//smaller, so a path and its reverse give the same result.
func canonicalPath(path []int) []int {
	p := slices.Clone(path)
	r := slices.Clone(path)
	slices.Reverse(r)
	if slices.Compare(r, p) < 0 {
		return r
	}
	return p
}

func pathKey(path []int) string {
	var b strings.Builder
	for i, v := range path {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

//LabelOptions control what goes in a chain label.
type LabelOptions struct {
	//annotate bonds with their order
	BondOrder bool
	//annotate atoms with their number of bonds
	Coordination bool
}

//chainTokens returns the tokens of the label for path, atoms in the even positions
//and bonds in the odd ones.
func (B *BondGraph) chainTokens(path []int, opts LabelOptions) []string {
	tokens := make([]string, 0, 2*len(path)-1)
	for k, at := range path {
		if k > 0 {
			bond := "-"
			if opts.BondOrder {
				bond = B.BondOrder(path[k-1], at).Symbol()
			}
			tokens = append(tokens, bond)
		}
		t := B.mol.Symbol(at)
		if opts.Coordination {
			t += strconv.Itoa(B.Degree(at))
		}
		tokens = append(tokens, t)
	}
	return tokens
}

//CanonicalTokens returns the smaller, token by token, of tokens and its reverse.
//The result does not share memory with tokens.
func CanonicalTokens(tokens []string) []string {
	f := slices.Clone(tokens)
	r := slices.Clone(tokens)
	slices.Reverse(r)
	if slices.Compare(r, f) < 0 {
		return r
	}
	return f
}

//Label returns the canonical label of the chain path, i.e. the same label
//is obtained for path and its reverse. Examples: "C", "C-H", "H-C=O", "C4-H1".
func (B *BondGraph) Label(path []int, opts LabelOptions) string {
	return strings.Join(CanonicalTokens(B.chainTokens(path, opts)), "")
}

//Labels returns the canonical labels of all the chains of depth atoms
//in the graph, one per chain (so labels can repeat).
func (B *BondGraph) Labels(depth int, opts LabelOptions) []string {
	chains := B.Chains(depth)
	ret := make([]string, 0, len(chains))
	for _, c := range chains {
		ret = append(ret, B.Label(c, opts))
	}
	return ret
}

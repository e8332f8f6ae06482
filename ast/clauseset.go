package ast

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// ClauseSet is a set of cnf formulas ordered by Compare.  Structurally
// equal clauses are stored once.  The parenthesised and bare forms of a
// clause are different members.
type ClauseSet struct {
	set *treeset.Set
}

func compareCNF(a, b any) int {
	return Compare(a.(*CNF), b.(*CNF))
}

func NewClauseSet(cs ...*CNF) *ClauseSet {
	s := &ClauseSet{set: treeset.NewWith(compareCNF)}
	s.Add(cs...)
	return s
}

// Add adds cs to the set and returns the number of clauses not already
// present.
func (s *ClauseSet) Add(cs ...*CNF) int {
	n := 0
	for _, c := range cs {
		if s.set.Contains(c) {
			continue
		}
		s.set.Add(c)
		n++
	}
	return n
}

func (s *ClauseSet) Contains(c *CNF) bool {
	return s.set.Contains(c)
}

func (s *ClauseSet) Remove(c *CNF) {
	s.set.Remove(c)
}

func (s *ClauseSet) Len() int {
	return s.set.Size()
}

// Clauses returns the members in ascending order.
func (s *ClauseSet) Clauses() []*CNF {
	res := make([]*CNF, 0, s.set.Size())
	it := s.set.Iterator()
	for it.Next() {
		res = append(res, it.Value().(*CNF))
	}
	return res
}

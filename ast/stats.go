package ast

// Stats are syntactic measurements of a formula.  Field names are the
// identifiers available to tptp select expressions.
type Stats struct {
	Format              string `yaml:"format" expr:"Format"`
	Depth               int    `yaml:"depth" expr:"Depth"`
	Atoms               int    `yaml:"atoms" expr:"Atoms"`
	Literals            int    `yaml:"literals" expr:"Literals"`
	Equalities          int    `yaml:"equalities" expr:"Equalities"`
	Variables           int    `yaml:"variables" expr:"Variables"`
	VariableOccurrences int    `yaml:"variableOccurrences" expr:"VariableOccurrences"`
	Quantifiers         int    `yaml:"quantifiers" expr:"Quantifiers"`
	Connectives         int    `yaml:"connectives" expr:"Connectives"`
	Ground              bool   `yaml:"ground" expr:"Ground"`
	Horn                bool   `yaml:"horn" expr:"Horn"`
	Text                string `yaml:"text" expr:"Text"`
}

// Measure computes the Stats of f.  Literals and Horn are only set for
// cnf formulas; an equality counts both = and !=.
func Measure(f Formula) Stats {
	st := Stats{
		Format: f.Format().String(),
		Depth:  depth(f),
		Text:   f.String(),
	}
	vars := map[string]struct{}{}
	var visit func(n Node) bool
	visit = func(n Node) bool {
		switch x := n.(type) {
		case *Variable:
			st.VariableOccurrences++
			vars[string(x.Name)] = struct{}{}
		case AtomicFormula:
			st.Atoms++
			if x.Kind() == DefinedInfixKind {
				st.Equalities++
			}
		case *InfixUnary:
			st.Atoms++
			st.Equalities++
			st.Connectives++
		case *Negation, *NegatedAtomic, *Nonassoc:
			st.Connectives++
		case *Assoc:
			st.Connectives += len(x.Formulas) - 1
		case *Disjunction:
			st.Connectives += len(x.Literals) - 1
		case *Quantified:
			st.Quantifiers++
			// the bound list is not an occurrence
			Walk(x.Formula, visit)
			return false
		}
		return true
	}
	Walk(f, visit)
	st.Variables = len(vars)
	st.Ground = st.Variables == 0
	if c, ok := f.(*CNF); ok {
		st.Literals = len(c.Clause.Literals)
		pos := 0
		for _, l := range c.Clause.Literals {
			if _, ok := l.(AtomicFormula); ok {
				pos++
			}
		}
		st.Horn = pos <= 1
	}
	return st
}

func depth(n Node) int {
	d := 0
	for _, k := range n.children() {
		d = max(d, depth(k))
	}
	return d + 1
}

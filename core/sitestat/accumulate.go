// core/sitestat/accumulate.go
package sitestat

// Sums is the running fold state for one group: summed numerator,
// denominator and compared-site count. Addition is associative and
// commutative, so partial sums from any partition of the input merge into
// the same result.
type Sums struct {
	Num   float64
	Den   float64
	Sites uint64
}

// Add merges two partial sums.
func (s Sums) Add(o Sums) Sums {
	return Sums{Num: s.Num + o.Num, Den: s.Den + o.Den, Sites: s.Sites + o.Sites}
}

// RunningSums maps each group to its fold state. A group with Den == 0 is
// kept: it becomes an explicit undefined value downstream, never a
// division error.
type RunningSums map[Key]Sums

// Observe folds one record into the running sums.
func (r RunningSums) Observe(rec Record) {
	k := rec.Key()
	r[k] = r[k].Add(Sums{Num: rec.Num, Den: rec.Den, Sites: rec.Sites})
}

// Merge folds another partial result into r (partition-then-merge).
func (r RunningSums) Merge(o RunningSums) {
	for k, s := range o {
		r[k] = r[k].Add(s)
	}
}

// Accumulate folds a slice of records left to right. Order within a group
// does not affect the result.
func Accumulate(recs []Record) RunningSums {
	sums := make(RunningSums, len(recs))
	for _, rec := range recs {
		sums.Observe(rec)
	}
	return sums
}

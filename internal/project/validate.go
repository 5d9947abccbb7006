package project

import (
	"errors"
	"fmt"
)

// Validate walks every crate's dependency edges and reports each index that
// falls outside the crate arena. Parsing never runs this; a consumer that
// intends to follow dependency edges should, since a dangling index is a
// structural defect in the document rather than something to discover
// mid-walk.
func (p *Project) Validate() error {
	var errs []error
	for i, crate := range p.Crates {
		for _, dep := range crate.Deps {
			if int(dep.Crate) < 0 || int(dep.Crate) >= len(p.Crates) {
				errs = append(errs, fmt.Errorf(
					"crate %d (%s): dep %q points at crate %d, but the document has %d crates",
					i, crate.DisplayName, dep.Name, int(dep.Crate), len(p.Crates)))
			}
		}
	}
	return errors.Join(errs...)
}

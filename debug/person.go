package debug

import (
	"fmt"
	"io"

	"github.com/iand/kintree/model"
)

// DumpPerson writes every field of a person to w, resolving relationship ids
// to names where the population contains them.
func DumpPerson(pop model.Population, p *model.Person, w io.Writer) {
	fmt.Fprintln(w, "ID:", p.ID)
	fmt.Fprintln(w, "FullName:", p.FullName())
	fmt.Fprintln(w, "Gender:", p.Gender)
	fmt.Fprintln(w, "YearBorn:", p.YearBorn)
	fmt.Fprintln(w, "YearDied:", p.YearDied)
	fmt.Fprintln(w, "Descendant:", p.Descendant)

	if !p.HasPartner() {
		fmt.Fprintln(w, "Partner: none")
	} else if partner, ok := pop.Get(p.PartnerID); ok {
		fmt.Fprintf(w, "Partner: %s (%d)\n", partner.FullName(), partner.ID)
	} else {
		fmt.Fprintln(w, "Partner:", p.PartnerID)
	}

	if len(p.ChildIDs) == 0 {
		fmt.Fprintln(w, "Children: none")
		return
	}
	fmt.Fprintln(w, "Children:")
	for _, cid := range p.ChildIDs {
		if c, ok := pop.Get(cid); ok {
			fmt.Fprintf(w, " - %s (%d) %s\n", c.FullName(), c.ID, c.VitalYears())
		} else {
			fmt.Fprintf(w, " - %d\n", cid)
		}
	}
}

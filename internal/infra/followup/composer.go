package followup

import (
	"strings"
)

// Composer builds follow-up messages locally from lead context. No external
// AI or API calls; it is a deterministic template.
type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

func (c *Composer) Compose(customer, company, product, notes string) string {
	name := strings.TrimSpace(customer)
	if name == "" {
		name = "there"
	}
	comp := strings.TrimSpace(company)
	prod := strings.TrimSpace(product)
	if prod == "" {
		prod = "your last order"
	}
	extra := strings.TrimSpace(notes)

	var b strings.Builder
	b.WriteString("Hey ")
	b.WriteString(name)
	b.WriteString(",")
	b.WriteString(" just wanted to check in about ")
	b.WriteString(prod)
	if comp != "" {
		b.WriteString(" from ")
		b.WriteString(comp)
	}
	b.WriteString(". ")
	if extra != "" {
		b.WriteString(extra)
		b.WriteString(" ")
	}
	b.WriteString("Let me know if you need a refill or have any questions.")

	return strings.TrimSpace(b.String())
}

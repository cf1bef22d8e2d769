package domain

// IndustryEntry pairs an industry label with the lowercase keywords
// that signal it in free text.
type IndustryEntry struct {
	Label    string
	Keywords []string
}

// Taxonomy is an ordered list of industries. Order matters: when two
// industries score equally, the first entry wins. A slice rather than
// a map keeps that tie-break deterministic.
type Taxonomy []IndustryEntry

// Labels returns the industry labels in taxonomy order.
func (t Taxonomy) Labels() []string {
	labels := make([]string, len(t))
	for i, e := range t {
		labels[i] = e.Label
	}
	return labels
}

// DefaultTaxonomy returns the built-in industry keyword sets matching
// the industries present in the solved-challenges dataset.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		{Label: "Retail/eCommerce", Keywords: []string{
			"retail", "ecommerce", "e-commerce", "shopping", "store", "merchandise", "consumer", "goods",
		}},
		{Label: "Financial Services", Keywords: []string{
			"bank", "finance", "financial", "fintech", "insurance", "investment", "payment", "wealth", "capital",
		}},
		{Label: "Manufacturing/Logistics", Keywords: []string{
			"manufacturing", "logistics", "supply chain", "shipping", "freight", "transport", "production", "industrial",
		}},
		{Label: "Media/Streaming", Keywords: []string{
			"media", "streaming", "entertainment", "broadcasting", "content", "video", "music", "gaming",
		}},
		{Label: "Online Travel", Keywords: []string{
			"travel", "booking", "flight", "hotel", "accommodation", "tourism", "vacation",
		}},
		{Label: "SaaS/Technology", Keywords: []string{
			"saas", "technology", "software", "cloud", "platform", "tech", "digital", "app",
		}},
		{Label: "Startup", Keywords: []string{
			"startup", "scaleup", "venture", "growth", "early stage",
		}},
	}
}

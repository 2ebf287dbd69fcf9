package element

// The normalizer fills derivable housing dimensions before a builder
// runs, so the calculator always sees complete min/nom/max triples.

// DefaultLeadSpan aliases the lead span to the body length for chip-like
// parts whose terminals are the body ends.
func (h *Housing) DefaultLeadSpan() {
	if h.LeadSpan == nil && h.BodyLength != nil {
		d := *h.BodyLength
		h.LeadSpan = &d
	}
}

// DefaultLeadSpanFromWidth aliases the lead span to the body width, as
// chip arrays are spanned across the body width.
func (h *Housing) DefaultLeadSpanFromWidth() {
	if h.LeadSpan == nil && h.BodyWidth != nil {
		d := *h.BodyWidth
		h.LeadSpan = &d
	}
}

// DefaultLeadWidth aliases the lead width to the body width for
// terminals that are the full body face.
func (h *Housing) DefaultLeadWidth() {
	if h.LeadWidth == nil && h.BodyWidth != nil {
		d := *h.BodyWidth
		h.LeadWidth = &d
	}
}

// DefaultBodyWidthFromDiameter treats a cylindrical body diameter as the
// body width (MELF and radial parts).
func (h *Housing) DefaultBodyWidthFromDiameter() {
	if h.BodyWidth == nil && h.BodyDiameter != nil {
		d := *h.BodyDiameter
		h.BodyWidth = &d
	}
}

// NormalizeSOTLeads fills the first and second lead widths from the
// plain lead width and then adopts the first one as the working width,
// as SOT calculations run on the wide side first.
func (h *Housing) NormalizeSOTLeads() {
	if h.LeadWidth1 == nil && h.LeadWidth != nil {
		d := *h.LeadWidth
		h.LeadWidth1 = &d
	}
	if h.LeadWidth2 == nil && h.LeadWidth != nil {
		d := *h.LeadWidth
		h.LeadWidth2 = &d
	}
	if h.LeadWidth1 != nil {
		d := *h.LeadWidth1
		h.LeadWidth = &d
	}
}

// NormalizePakLeads maps the first lead width onto the working lead
// width for tab packages described with per-lead fields.
func (h *Housing) NormalizePakLeads() {
	if h.LeadWidth == nil && h.LeadWidth1 != nil {
		d := *h.LeadWidth1
		h.LeadWidth = &d
	}
}

// NormalizeGridPitch reconciles the plain pitch with the per-axis
// pitches: the missing ones are filled from the present ones.
func (h *Housing) NormalizeGridPitch() {
	if h.Pitch == 0 && h.HorizontalPitch != 0 && h.VerticalPitch != 0 {
		h.Pitch = h.HorizontalPitch
		if h.VerticalPitch > h.Pitch {
			h.Pitch = h.VerticalPitch
		}
	}
	if h.HorizontalPitch == 0 {
		h.HorizontalPitch = h.Pitch
	}
	if h.VerticalPitch == 0 {
		h.VerticalPitch = h.Pitch
	}
}

// DeriveCornerConcave derives the row/column spans and the lead sizes of
// a corner-concave package from its body and the edge-to-edge pad
// separations. Lead sizes are floored at 0.05 mm. Without separations
// the spans are estimated assuming each pad covers a fifth of the body.
func (h *Housing) DeriveCornerConcave() {
	bodyLength := dimOrZero(h.BodyLength)
	bodyWidth := dimOrZero(h.BodyWidth)

	if h.PadSeparationLength != nil {
		sep := *h.PadSeparationLength
		if h.LeadLength == nil {
			h.LeadLength = &Dim{
				Min: floorLead((bodyLength.Min - sep.Max) / 2),
				Nom: floorLead((bodyLength.Nom - sep.Nom) / 2),
				Max: floorLead((bodyLength.Max - sep.Min) / 2),
			}
		}
		if h.RowSpan == nil {
			h.RowSpan = &Dim{
				Min: (bodyLength.Min + sep.Min) / 2,
				Nom: (bodyLength.Nom + sep.Nom) / 2,
				Max: (bodyLength.Max + sep.Max) / 2,
			}
		}
	}
	if h.PadSeparationWidth != nil {
		sep := *h.PadSeparationWidth
		if h.LeadWidth == nil {
			h.LeadWidth = &Dim{
				Min: floorLead((bodyWidth.Min - sep.Max) / 2),
				Nom: floorLead((bodyWidth.Nom - sep.Nom) / 2),
				Max: floorLead((bodyWidth.Max - sep.Min) / 2),
			}
		}
		if h.ColumnSpan == nil {
			h.ColumnSpan = &Dim{
				Min: (bodyWidth.Min + sep.Min) / 2,
				Nom: (bodyWidth.Nom + sep.Nom) / 2,
				Max: (bodyWidth.Max + sep.Max) / 2,
			}
		}
	}

	if h.RowSpan == nil && bodyLength.Nom > 0 {
		lead := bodyLength.Nom * 0.2
		h.RowSpan = &Dim{Min: bodyLength.Nom * 0.8, Nom: bodyLength.Nom * 0.8, Max: bodyLength.Nom * 0.8}
		if h.LeadLength == nil {
			h.LeadLength = &Dim{Min: lead * 0.8, Nom: lead, Max: lead * 1.2}
		}
	}
	if h.ColumnSpan == nil && bodyWidth.Nom > 0 {
		lead := bodyWidth.Nom * 0.2
		h.ColumnSpan = &Dim{Min: bodyWidth.Nom * 0.8, Nom: bodyWidth.Nom * 0.8, Max: bodyWidth.Nom * 0.8}
		if h.LeadWidth == nil {
			h.LeadWidth = &Dim{Min: lead * 0.8, Nom: lead, Max: lead * 1.2}
		}
	}
}

func floorLead(v float64) float64 {
	if v < 0.05 {
		return 0.05
	}
	return v
}

func dimOrZero(d *Dim) Dim {
	if d == nil {
		return Dim{}
	}
	return *d
}

// HeightMax returns the maximum body height, falling back on the body
// diameter for cylindrical parts.
func (h *Housing) HeightMax() float64 {
	if h.Height != nil {
		return h.Height.Max
	}
	if h.BodyDiameter != nil {
		return h.BodyDiameter.Max
	}
	return 0
}

// HasTab reports whether the housing defines a nonzero thermal tab.
func (h *Housing) HasTab() bool {
	return h.TabLength != nil && h.TabWidth != nil &&
		h.TabLength.Nom > 0 && h.TabWidth.Nom > 0
}

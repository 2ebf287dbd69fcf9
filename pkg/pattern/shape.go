package pattern

// Layer identifies a drawing layer by side and function. The KiCad
// serializer maps these to board layer names.
type Layer string

const (
	TopCopper        Layer = "topCopper"
	TopMask          Layer = "topMask"
	TopPaste         Layer = "topPaste"
	TopSilkscreen    Layer = "topSilkscreen"
	TopAssembly      Layer = "topAssembly"
	TopCourtyard     Layer = "topCourtyard"
	IntCopper        Layer = "intCopper"
	BottomCopper     Layer = "bottomCopper"
	BottomMask       Layer = "bottomMask"
	BottomPaste      Layer = "bottomPaste"
	BottomSilkscreen Layer = "bottomSilkscreen"
	BottomAssembly   Layer = "bottomAssembly"
	BottomCourtyard  Layer = "bottomCourtyard"
)

// PadType selects the fabrication style of a pad.
type PadType string

const (
	SMDPad          PadType = "smd"
	ThroughHolePad  PadType = "through-hole"
	MountingHolePad PadType = "mounting-hole"
)

// PadShape selects the copper outline of a pad.
type PadShape string

const (
	RectPad   PadShape = "rectangle"
	CirclePad PadShape = "circle"
)

// Kind discriminates the shape variants stored on a pattern.
type Kind int

const (
	AttributeKind Kind = iota
	CircleKind
	LineKind
	RectKind
	PadKind
)

// Shape is one drawable element of a pattern. Only the fields relevant
// to its Kind are meaningful.
type Shape struct {
	Kind      Kind
	Layers    []Layer
	LineWidth float64
	Fill      bool

	// attribute and pad anchor, circle center
	X, Y float64

	// line and rectangle endpoints
	X1, Y1, X2, Y2 float64

	Radius float64

	// attribute text
	Name     string
	Text     string
	FontSize float64
	Angle    float64
	HasAngle bool
	Visible  bool

	// pad
	PadName    string
	PadType    PadType
	PadShape   PadShape
	Width      float64
	Height     float64
	Hole       float64
	SlotWidth  float64
	SlotHeight float64
	Mask       *float64
	Paste      *float64
	Clearance  *float64
	DieLength  *float64
	Property   string
}

// Pad describes a pad to place on the pattern.
type Pad struct {
	Type       PadType
	Shape      PadShape
	X, Y       float64
	Width      float64
	Height     float64
	Hole       float64
	SlotWidth  float64
	SlotHeight float64
	Layers     []Layer
	Mask       *float64
	Paste      *float64
	Clearance  *float64
	DieLength  *float64
	Property   string
}

// Attr describes a text attribute (reference designator, value, user
// text) to place on the pattern.
type Attr struct {
	X, Y     float64
	Text     string
	FontSize float64
	Angle    float64
	HasAngle bool
	Hidden   bool
}

// Point is a 2D position in millimeters.
type Point struct {
	X, Y float64
}

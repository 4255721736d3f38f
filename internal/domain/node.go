package domain

// Status is the classification state of one input line.
type Status string

const (
	StatusRuled   Status = "VALID_RULED"
	StatusUnruled Status = "VALID_UNRULED"
	StatusInvalid Status = "INVALID"
)

// Priority orders statuses for sorting: ruled nodes first, invalid last.
func (s Status) Priority() int {
	switch s {
	case StatusRuled:
		return 1
	case StatusUnruled:
		return 2
	default:
		return 3
	}
}

// ParsedRemark is the structured form of a remark that follows the naming rule
// <country>-<region>-Tier<n>[-sid:<id>][-sn:<n>][-flag:<A-Z>].
type ParsedRemark struct {
	Country string
	Region  string
	Tier    int

	SID  *string // Optional: series identifier.
	SN   *int    // Optional: series number. Only valid together with SID.
	Flag *string // Optional: single uppercase letter.
}

// HasFlag reports whether the remark carries the given flag letter.
func (p ParsedRemark) HasFlag(flag string) bool {
	return p.Flag != nil && *p.Flag == flag
}

// Classification is a closed set: Ruled, Unruled or Invalid. Each variant only
// carries the fields that are meaningful for its status.
type Classification interface {
	Status() Status
	classification()
}

// Ruled is a decodable link whose remark matches the naming rule.
type Ruled struct {
	Remark string
	Parsed ParsedRemark
}

// Unruled is a decodable link whose remark does not follow the naming rule.
type Unruled struct {
	Remark string
}

// Invalid is a link that could not be decoded, or whose remark breaks a rule
// invariant. Remark is empty when decoding failed.
type Invalid struct {
	Remark string
	Err    *LinkError
}

func (Ruled) Status() Status   { return StatusRuled }
func (Unruled) Status() Status { return StatusUnruled }
func (Invalid) Status() Status { return StatusInvalid }

func (Ruled) classification()   {}
func (Unruled) classification() {}
func (Invalid) classification() {}

// ClassifiedItem is the unit carried through sorting, reordering and rendering.
// ID is the position of the line at ingestion and is only stable within one rebuild.
type ClassifiedItem struct {
	ID           int
	OriginalLink string
	Class        Classification
}

// Status returns the item's status. An item without classification is invalid.
func (it ClassifiedItem) Status() Status {
	if it.Class == nil {
		return StatusInvalid
	}
	return it.Class.Status()
}

// Remark returns the extracted remark, if any.
func (it ClassifiedItem) Remark() (string, bool) {
	switch c := it.Class.(type) {
	case Ruled:
		return c.Remark, true
	case Unruled:
		return c.Remark, true
	case Invalid:
		return c.Remark, c.Remark != ""
	default:
		return "", false
	}
}

// Parsed returns the parsed remark for ruled items.
func (it ClassifiedItem) Parsed() (ParsedRemark, bool) {
	if c, ok := it.Class.(Ruled); ok {
		return c.Parsed, true
	}
	return ParsedRemark{}, false
}

// Err returns the link error for invalid items.
func (it ClassifiedItem) Err() (*LinkError, bool) {
	if c, ok := it.Class.(Invalid); ok && c.Err != nil {
		return c.Err, true
	}
	return nil, false
}

// Summary counts items per status.
type Summary struct {
	Ruled   int
	Unruled int
	Invalid int
}

func (s Summary) Total() int { return s.Ruled + s.Unruled + s.Invalid }

// NodeList is a classified list in its current order.
type NodeList struct {
	Items   []ClassifiedItem
	Summary Summary
}

func NewNodeList(items []ClassifiedItem) NodeList {
	var s Summary
	for _, it := range items {
		switch it.Status() {
		case StatusRuled:
			s.Ruled++
		case StatusUnruled:
			s.Unruled++
		default:
			s.Invalid++
		}
	}
	return NodeList{Items: items, Summary: s}
}

// Text reconstructs the raw input form of the list in its current order.
func (l NodeList) Text() string {
	return JoinLinks(l.Items)
}

// IDs returns the item ids in their current order.
func (l NodeList) IDs() []int {
	out := make([]int, 0, len(l.Items))
	for _, it := range l.Items {
		out = append(out, it.ID)
	}
	return out
}

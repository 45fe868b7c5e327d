package domain

import "strings"

// Tag is a Sustainable Development Goal label such as
// "SDG 13: Climate Action". The empty Tag means "no filter".
type Tag string

const NoTag Tag = ""

func (t Tag) String() string {
	return string(t)
}

// Code returns the short goal code ("SDG 13") shown in the detail overlay.
func (t Tag) Code() string {
	code, _, _ := strings.Cut(string(t), ":")
	return strings.TrimSpace(code)
}

func (t Tag) Valid() bool {
	_, ok := knownTags[t]
	return ok
}

// Tags lists the 17 goals in numeric order.
var Tags = []Tag{
	"SDG 1: No Poverty",
	"SDG 2: Zero Hunger",
	"SDG 3: Good Health and Well-being",
	"SDG 4: Quality Education",
	"SDG 5: Gender Equality",
	"SDG 6: Clean Water and Sanitation",
	"SDG 7: Affordable and Clean Energy",
	"SDG 8: Decent Work and Economic Growth",
	"SDG 9: Industry, Innovation and Infrastructure",
	"SDG 10: Reduced Inequalities",
	"SDG 11: Sustainable Cities and Communities",
	"SDG 12: Responsible Consumption and Production",
	"SDG 13: Climate Action",
	"SDG 14: Life Below Water",
	"SDG 15: Life on Land",
	"SDG 16: Peace, Justice and Strong Institutions",
	"SDG 17: Partnerships for the Goals",
}

var knownTags = func() map[Tag]struct{} {
	m := make(map[Tag]struct{}, len(Tags))
	for _, t := range Tags {
		m[t] = struct{}{}
	}
	return m
}()

// ParseTag validates a filter value. The empty string clears the filter.
func ParseTag(s string) (Tag, error) {
	t := Tag(strings.TrimSpace(s))
	if t == NoTag {
		return NoTag, nil
	}
	if !t.Valid() {
		return NoTag, InvalidArgument("unknown SDG tag %q", s)
	}
	return t, nil
}
